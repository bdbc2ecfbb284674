package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/ini.v1"

	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
)

// FileName - имя файла хранилища в каталоге приложения.
const FileName = "FastFill_config.ini"

// ReservedSection - имя секции INI, которое не может быть категорией.
const ReservedSection = "DEFAULT"

var itemKey = regexp.MustCompile(`^item(\d+)_(title|content)$`)

// Значения читаются так же, как их пишет Python configparser: без кавычек,
// экранирования и inline-комментариев, многострочные - строками с отступом.
var loadOptions = ini.LoadOptions{
	AllowPythonMultilineValues: true,
	IgnoreInlineComment:        true,
	IgnoreContinuation:         true,
	PreserveSurroundedQuote:    true,
}

// minReaderBuffer - размер буфера читателя ini.v1 по умолчанию.
const minReaderBuffer = 4096

// FileStorage читает и пишет Store в INI-файл.
//
// Формат:
//
//	[Category 1]
//	item1_title = Example Text
//	item1_content = example.mail@mail.com
//	item2_title = Secret_encrypted
//	item2_content = <base64 envelope>
//	item3_title = Note
//	item3_content = first line
//		second line
type FileStorage struct {
	Path string
}

// NewFileStorage создаёт FileStorage для файла path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

// DefaultPath возвращает путь хранилища внутри каталога приложения.
func DefaultPath(appDir string) string {
	return filepath.Join(appDir, FileName)
}

// Load читает файл целиком.
//
// Отсутствующий файл - пустой Store без ошибки (первый запуск).
// Нечитаемый или неразборный файл - serr.ErrStorageIO.
func (fs *FileStorage) Load() (*Store, error) {
	b, err := os.ReadFile(fs.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Store{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", serr.ErrStorageIO, fs.Path, err)
	}

	s, err := parse(b)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", serr.ErrStorageIO, fs.Path, err)
	}
	return s, nil
}

// Save атомарно переписывает файл: временный файл рядом, fsync, rename.
// Перед записью текст файла разбирается заново и сравнивается с s:
// если что-то не читается обратно как есть, файл не трогается.
// При любой ошибке прежний файл остаётся нетронутым.
func (fs *FileStorage) Save(s *Store) error {
	buf := render(s)
	if err := verify(s, buf); err != nil {
		return fmt.Errorf("%w: %v", serr.ErrStorageIO, err)
	}

	dir := filepath.Dir(fs.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", serr.ErrStorageIO, dir, err)
	}

	tmpName := filepath.Join(dir, "."+filepath.Base(fs.Path)+"."+uuid.NewString()+".tmp")
	if err := writeSynced(tmpName, buf); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", serr.ErrStorageIO, tmpName, err)
	}
	if err := os.Rename(tmpName, fs.Path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %v", serr.ErrStorageIO, fs.Path, err)
	}
	return nil
}

// Quarantine переносит файл в <path>.broken-<unix>, чтобы не потерять его
// при записи хранилища по умолчанию. Отсутствующий файл ошибкой не считается.
func (fs *FileStorage) Quarantine() (string, error) {
	dst := fmt.Sprintf("%s.broken-%d", fs.Path, time.Now().Unix())
	if err := os.Rename(fs.Path, dst); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("%w: move aside %s: %v", serr.ErrStorageIO, fs.Path, err)
	}
	return dst, nil
}

func writeSynced(name string, data []byte) error {
	tmp, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	return tmp.Close()
}

type rawItem struct {
	n        int
	title    string
	content  string
	hasTitle bool
}

// Verify проверяет, что s запишется в файл и прочитается обратно без изменений.
func Verify(s *Store) error {
	return verify(s, render(s))
}

func verify(s *Store, rendered []byte) error {
	got, err := parse(rendered)
	if err != nil {
		return fmt.Errorf("rendered store does not parse: %v", err)
	}
	return diff(s, got)
}

// diff сравнивает записанное с прочитанным и называет первое расхождение.
func diff(want, got *Store) error {
	if len(want.Categories) != len(got.Categories) {
		return fmt.Errorf("%d categories written, %d read back", len(want.Categories), len(got.Categories))
	}
	for i, w := range want.Categories {
		g := got.Categories[i]
		if w.Name != g.Name {
			return fmt.Errorf("category %q reads back as %q", w.Name, g.Name)
		}
		if len(w.Entries) != len(g.Entries) {
			return fmt.Errorf("category %q: %d entries written, %d read back", w.Name, len(w.Entries), len(g.Entries))
		}
		for j, we := range w.Entries {
			ge := g.Entries[j]
			if we.Title != ge.Title || contentOf(we) != contentOf(ge) {
				return fmt.Errorf("entry %q in category %q cannot be stored verbatim", we.Title, w.Name)
			}
		}
	}
	return nil
}

func contentOf(e Entry) Content {
	if e.Content == nil {
		return Plain{}
	}
	return e.Content
}

// parse разбирает текст файла. Буфер читателя больше данных: многострочное
// значение, пересекающее границу буфера, ini.v1 обрезает.
func parse(b []byte) (*Store, error) {
	opts := loadOptions
	opts.ReaderBufferSize = len(b) + minReaderBuffer
	f, err := ini.LoadSources(opts, b)
	if err != nil {
		return nil, err
	}
	return decode(f), nil
}

func decode(f *ini.File) *Store {
	out := &Store{}
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}

		items := map[int]*rawItem{}
		for _, k := range sec.Keys() {
			m := itemKey.FindStringSubmatch(k.Name())
			if m == nil {
				continue
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			it, ok := items[n]
			if !ok {
				it = &rawItem{n: n}
				items[n] = it
			}
			if m[2] == "title" {
				it.title, it.hasTitle = unindent(k.Value()), true
			} else {
				it.content = unindent(k.Value())
			}
		}

		ordered := make([]*rawItem, 0, len(items))
		for _, it := range items {
			// content без title не образует запись
			if it.hasTitle {
				ordered = append(ordered, it)
			}
		}
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].n < ordered[j].n })

		cat := Category{Name: sec.Name(), Entries: make([]Entry, 0, len(ordered))}
		for _, it := range ordered {
			cat.Entries = append(cat.Entries, decodeEntry(it.title, it.content))
		}
		out.Categories = append(out.Categories, cat)
	}
	return out
}

// unindent снимает отступ строк продолжения. configparser пишет ровно одну
// табуляцию; строки, набранные вручную пробелами, теряют весь отступ.
func unindent(v string) string {
	if !strings.Contains(v, "\n") {
		return v
	}
	lines := strings.Split(v, "\n")
	for i := 1; i < len(lines); i++ {
		if l, ok := strings.CutPrefix(lines[i], "\t"); ok {
			lines[i] = l
		} else {
			lines[i] = strings.TrimLeft(lines[i], " \t\f")
		}
	}
	return strings.Join(lines, "\n")
}

func decodeEntry(title, content string) Entry {
	if base, ok := strings.CutSuffix(title, EncryptedSuffix); ok && base != "" {
		return Entry{Title: base, Content: Encrypted{Envelope: content}}
	}
	return Entry{Title: title, Content: Plain{Text: content}}
}

// render пишет Store так же, как Python configparser: "key = value",
// строки многострочного значения продолжаются с табуляцией,
// после каждой секции пустая строка.
func render(s *Store) []byte {
	var b bytes.Buffer
	for _, c := range s.Categories {
		b.WriteString("[" + c.Name + "]\n")
		for i, e := range c.Entries {
			title, content := encodeEntry(e)
			writeKey(&b, fmt.Sprintf("item%d_title", i+1), title)
			writeKey(&b, fmt.Sprintf("item%d_content", i+1), content)
		}
		b.WriteByte('\n')
	}
	return b.Bytes()
}

func writeKey(b *bytes.Buffer, key, value string) {
	b.WriteString(key)
	b.WriteString(" = ")
	b.WriteString(strings.ReplaceAll(value, "\n", "\n\t"))
	b.WriteByte('\n')
}

func encodeEntry(e Entry) (title, content string) {
	switch c := e.Content.(type) {
	case Encrypted:
		return e.Title + EncryptedSuffix, c.Envelope
	case Plain:
		return e.Title, c.Text
	default:
		return e.Title, ""
	}
}
