package tests

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/service"
	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
)

var titleGen = rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,11}[A-Za-z0-9]`)

// после удаления любой записи позиции снова 1..N-1, порядок остальных прежний
func TestRapid_DeleteEntry_Renumbers(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		svc := newMemService(rt)

		n := rapid.IntRange(1, 8).Draw(rt, "n")
		want := []string{"Example Text"}
		for i := 0; i < n; i++ {
			title := fmt.Sprintf("item %d", i)
			if err := svc.AddEntry(defaultCategory, service.NewEntry{Title: title, Content: title}); err != nil {
				rt.Fatalf("AddEntry: %v", err)
			}
			want = append(want, title)
		}

		k := rapid.IntRange(0, len(want)-1).Draw(rt, "k")
		if err := svc.DeleteEntry(defaultCategory, want[k]); err != nil {
			rt.Fatalf("DeleteEntry: %v", err)
		}
		want = append(want[:k], want[k+1:]...)

		got := titles(rt, svc, defaultCategory)
		if fmt.Sprint(got) != fmt.Sprint(want) {
			rt.Fatalf("order mismatch: got %v want %v", got, want)
		}
	})
}

// совпадение заголовка без учёта пометки всегда даёт ErrDuplicateTitle
func TestRapid_AddEntry_DuplicateTitleAlwaysRejected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		svc := newMemService(rt)

		title := titleGen.Draw(rt, "title")
		firstEnc := rapid.Bool().Draw(rt, "firstEncrypted")
		secondEnc := rapid.Bool().Draw(rt, "secondEncrypted")

		err := svc.AddEntry(defaultCategory, service.NewEntry{Title: title, Content: "a", Encrypt: firstEnc, Password: "pw"})
		if errors.Is(err, serr.ErrDuplicateTitle) {
			// совпало с записью по умолчанию
			return
		}
		if err != nil {
			rt.Fatalf("AddEntry: %v", err)
		}

		err = svc.AddEntry(defaultCategory, service.NewEntry{Title: title, Content: "b", Encrypt: secondEnc, Password: "pw"})
		if !errors.Is(err, serr.ErrDuplicateTitle) {
			rt.Fatalf("expected ErrDuplicateTitle, got %v", err)
		}
	})
}

// удаление категории падает только когда она последняя
func TestRapid_DeleteCategory_LastCategory(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		svc := newMemService(rt)

		extra := rapid.IntRange(0, 4).Draw(rt, "extra")
		for i := 0; i < extra; i++ {
			if err := svc.AddCategory(fmt.Sprintf("cat %d", i)); err != nil {
				rt.Fatalf("AddCategory: %v", err)
			}
		}

		names, _ := svc.Categories()
		victim := names[rapid.IntRange(0, len(names)-1).Draw(rt, "victim")]
		err := svc.DeleteCategory(victim)

		if len(names) == 1 {
			if !errors.Is(err, serr.ErrLastCategory) {
				rt.Fatalf("expected ErrLastCategory, got %v", err)
			}
			return
		}
		if err != nil {
			rt.Fatalf("DeleteCategory: %v", err)
		}
		after, _ := svc.Categories()
		if len(after) != len(names)-1 {
			rt.Fatalf("expected %d categories, got %d", len(names)-1, len(after))
		}
	})
}

// зашифрованная запись читается исходным паролем, чужой пароль её не раскрывает
func TestRapid_EncryptedEntry_RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		svc := newMemService(rt)

		password := rapid.StringN(1, 16, -1).Filter(func(s string) bool { return strings.TrimSpace(s) != "" }).Draw(rt, "password")
		other := rapid.StringN(1, 16, -1).Filter(func(s string) bool { return s != password }).Draw(rt, "other")
		content := rapid.StringMatching(`[ -~]{1,40}`).Draw(rt, "content")

		if err := svc.AddEntry(defaultCategory, service.NewEntry{
			Title: "Secret", Content: content, Encrypt: true, Password: password,
		}); err != nil {
			rt.Fatalf("AddEntry: %v", err)
		}

		got, err := svc.ReadEntry(defaultCategory, "Secret", password)
		if err != nil || got != content {
			rt.Fatalf("ReadEntry: got %q, err %v", got, err)
		}

		got, err = svc.ReadEntry(defaultCategory, "Secret", other)
		if err == nil && got == content {
			rt.Fatalf("other password recovered the content")
		}
	})
}

// любой текст в одной категории либо сохраняется как есть, либо отклоняется;
// остальные категории файла при этом не меняются
func TestRapid_FileStore_AddEntryKeepsOtherCategories(t *testing.T) {
	dir := t.TempDir()
	contentGen := rapid.OneOf(rapid.String(), rapid.StringMatching(`[ -~\n\t]{0,40}`))

	rapid.Check(t, func(rt *rapid.T) {
		caseDir, err := os.MkdirTemp(dir, "case")
		require.NoError(rt, err)
		svc, _ := newServiceIn(rt, caseDir)
		require.NoError(rt, svc.AddCategory("Work"))
		require.NoError(rt, svc.AddEntry("Work", service.NewEntry{Title: "mail", Content: "w@example.com"}))

		content := contentGen.Draw(rt, "content")
		err = svc.AddEntry(defaultCategory, service.NewEntry{Title: "snippet", Content: content})
		if err != nil {
			require.ErrorIs(rt, err, serr.ErrInvalidInput)
		} else {
			got, err := svc.ReadEntry(defaultCategory, "snippet", "")
			require.NoError(rt, err)
			require.Equal(rt, content, got)
		}

		require.NoError(rt, svc.AddEntry(defaultCategory, service.NewEntry{Title: "after", Content: "x"}))

		names, err := svc.Categories()
		require.NoError(rt, err)
		require.Equal(rt, []string{defaultCategory, "Work"}, names)
		require.Equal(rt, []string{"mail"}, titles(rt, svc, "Work"))
		got, err := svc.ReadEntry("Work", "mail", "")
		require.NoError(rt, err)
		require.Equal(rt, "w@example.com", got)
	})
}
