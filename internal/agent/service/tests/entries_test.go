package tests

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/service"
	"github.com/IvanChernomyrdin/fastfill/internal/agent/store"
	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
)

// сценарий: запись шифруется паролем и читается им же
func TestScenario_AddEncrypted_ReadWithRightAndWrongPassword(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.ReadEntry(defaultCategory, "Example Text", "")
	require.NoError(t, err)
	require.Equal(t, "example.mail@mail.com", got)

	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{
		Title: "Secret", Content: "s3cr3t", Encrypt: true, Password: "hunter2",
	}))

	got, err = svc.ReadEntry(defaultCategory, "Secret", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "s3cr3t", got)

	_, err = svc.ReadEntry(defaultCategory, "Secret", "wrong")
	require.ErrorIs(t, err, serr.ErrWrongPassword)
}

func TestAddEntry_PersistsSuffixAndEnvelope(t *testing.T) {
	svc, fs := newService(t)

	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{
		Title: "Secret", Content: "s3cr3t", Encrypt: true, Password: "pw",
	}))

	b, err := os.ReadFile(fs.Path)
	require.NoError(t, err)
	require.Contains(t, string(b), "Secret_encrypted")
	require.NotContains(t, string(b), "s3cr3t")

	views, err := svc.Entries(defaultCategory)
	require.NoError(t, err)
	require.Equal(t, []service.EntryView{
		{Position: 1, Title: "Example Text", Encrypted: false},
		{Position: 2, Title: "Secret", Encrypted: true},
	}, views)
}

func TestAddEntry_DuplicateTitle_RegardlessOfEncryption(t *testing.T) {
	svc, _ := newService(t)

	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{
		Title: "Secret", Content: "x", Encrypt: true, Password: "pw",
	}))

	err := svc.AddEntry(defaultCategory, service.NewEntry{Title: "Secret", Content: "y"})
	require.ErrorIs(t, err, serr.ErrDuplicateTitle)

	err = svc.AddEntry(defaultCategory, service.NewEntry{Title: "Example Text", Content: "y", Encrypt: true, Password: "pw"})
	require.ErrorIs(t, err, serr.ErrDuplicateTitle)

	err = svc.AddEntry(defaultCategory, service.NewEntry{Title: "  Example Text  ", Content: "y"})
	require.ErrorIs(t, err, serr.ErrDuplicateTitle)
}

func TestAddEntry_InvalidInput(t *testing.T) {
	svc, _ := newService(t)

	for _, title := range []string{"", "   ", "Secret_encrypted", "Secret 🔒", "two\nlines"} {
		err := svc.AddEntry(defaultCategory, service.NewEntry{Title: title, Content: "x"})
		require.ErrorIs(t, err, serr.ErrInvalidInput, title)
	}

	err := svc.AddEntry(defaultCategory, service.NewEntry{Title: "S", Content: "x", Encrypt: true})
	require.ErrorIs(t, err, serr.ErrPasswordRequired)

	err = svc.AddEntry("Missing", service.NewEntry{Title: "S", Content: "x"})
	require.ErrorIs(t, err, serr.ErrCategoryNotFound)
	require.ErrorIs(t, err, serr.ErrNotFound)

	require.Equal(t, []string{"Example Text"}, titles(t, svc, defaultCategory))
}

func TestReadEntry_Errors(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{
		Title: "Secret", Content: "x", Encrypt: true, Password: "pw",
	}))

	_, err := svc.ReadEntry(defaultCategory, "Secret", "")
	require.ErrorIs(t, err, serr.ErrPasswordRequired)

	_, err = svc.ReadEntry(defaultCategory, "Nope", "")
	require.ErrorIs(t, err, serr.ErrEntryNotFound)

	_, err = svc.ReadEntry("Nope", "Secret", "pw")
	require.ErrorIs(t, err, serr.ErrCategoryNotFound)

	// пометка в заголовке при чтении допускается
	got, err := svc.ReadEntry(defaultCategory, "Secret 🔒", "pw")
	require.NoError(t, err)
	require.Equal(t, "x", got)
}

func TestReadEntry_MalformedEnvelope_ReturnsErrDecode(t *testing.T) {
	svc, fs := newService(t)

	st, err := fs.Load()
	require.NoError(t, err)
	st.Categories[0].Entries = append(st.Categories[0].Entries,
		store.Entry{Title: "Broken", Content: store.Encrypted{Envelope: "c2hvcnQ="}})
	require.NoError(t, fs.Save(st))

	_, err = svc.ReadEntry(defaultCategory, "Broken", "pw")
	require.ErrorIs(t, err, serr.ErrDecode)
}

func TestRenameEntry_KeepsEncryptionAndPosition(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{
		Title: "Secret", Content: "s3cr3t", Encrypt: true, Password: "pw",
	}))
	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{Title: "Last", Content: "l"}))

	require.NoError(t, svc.RenameEntry(defaultCategory, "Secret 🔒", "Bank PIN"))
	require.Equal(t, []string{"Example Text", "Bank PIN", "Last"}, titles(t, svc, defaultCategory))

	got, err := svc.ReadEntry(defaultCategory, "Bank PIN", "pw")
	require.NoError(t, err)
	require.Equal(t, "s3cr3t", got)

	views, err := svc.Entries(defaultCategory)
	require.NoError(t, err)
	require.True(t, views[1].Encrypted)
}

func TestRenameEntry_Errors(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{Title: "Other", Content: "o"}))

	err := svc.RenameEntry(defaultCategory, "Example Text", "Other")
	require.ErrorIs(t, err, serr.ErrDuplicateTitle)

	err = svc.RenameEntry(defaultCategory, "Missing", "New")
	require.ErrorIs(t, err, serr.ErrEntryNotFound)

	err = svc.RenameEntry(defaultCategory, "Example Text", "x_encrypted")
	require.ErrorIs(t, err, serr.ErrInvalidInput)

	// переименование в самого себя не считается конфликтом
	require.NoError(t, svc.RenameEntry(defaultCategory, "Example Text", "Example Text"))
	require.Equal(t, []string{"Example Text", "Other"}, titles(t, svc, defaultCategory))
}

func TestDeleteEntry_Renumbers(t *testing.T) {
	svc, _ := newService(t)
	for _, title := range []string{"B", "C", "D"} {
		require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{Title: title, Content: title}))
	}

	require.NoError(t, svc.DeleteEntry(defaultCategory, "B"))
	require.Equal(t, []string{"Example Text", "C", "D"}, titles(t, svc, defaultCategory))

	got, err := svc.ReadEntry(defaultCategory, "D", "")
	require.NoError(t, err)
	require.Equal(t, "D", got)

	err = svc.DeleteEntry(defaultCategory, "B")
	require.ErrorIs(t, err, serr.ErrEntryNotFound)
}

func TestReorderEntries(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{
		Title: "Secret", Content: "s", Encrypt: true, Password: "pw",
	}))
	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{Title: "Z", Content: "z"}))

	require.NoError(t, svc.ReorderEntries(defaultCategory, []string{"Z", "Secret 🔒", "Example Text"}))
	require.Equal(t, []string{"Z", "Secret", "Example Text"}, titles(t, svc, defaultCategory))

	got, err := svc.ReadEntry(defaultCategory, "Secret", "pw")
	require.NoError(t, err)
	require.Equal(t, "s", got)

	for _, bad := range [][]string{
		{"Z", "Secret"},
		{"Z", "Z", "Example Text"},
		{"Z", "Secret", "Unknown"},
		{"Z", "Secret", "Example Text", "Extra"},
	} {
		err := svc.ReorderEntries(defaultCategory, bad)
		require.ErrorIs(t, err, serr.ErrInvalidOrder)
		require.ErrorIs(t, err, serr.ErrInvalidInput)
	}
	require.Equal(t, []string{"Z", "Secret", "Example Text"}, titles(t, svc, defaultCategory))
}

func TestUpdateContent_PlainAndEncrypted(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{
		Title: "Secret", Content: "old", Encrypt: true, Password: "pw1",
	}))

	require.NoError(t, svc.UpdateContent(defaultCategory, "Example Text", "new@mail.com", ""))
	got, err := svc.ReadEntry(defaultCategory, "Example Text", "")
	require.NoError(t, err)
	require.Equal(t, "new@mail.com", got)

	err = svc.UpdateContent(defaultCategory, "Secret", "new", "")
	require.ErrorIs(t, err, serr.ErrPasswordRequired)

	require.NoError(t, svc.UpdateContent(defaultCategory, "Secret", "new", "pw2"))
	got, err = svc.ReadEntry(defaultCategory, "Secret", "pw2")
	require.NoError(t, err)
	require.Equal(t, "new", got)

	_, err = svc.ReadEntry(defaultCategory, "Secret", "pw1")
	require.ErrorIs(t, err, serr.ErrWrongPassword)

	views, err := svc.Entries(defaultCategory)
	require.NoError(t, err)
	require.True(t, views[1].Encrypted)
}

func TestUpdateContent_FreshEnvelopeEachTime(t *testing.T) {
	svc, fs := newService(t)
	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{
		Title: "Secret", Content: "same", Encrypt: true, Password: "pw",
	}))

	envelope := func() string {
		st, err := fs.Load()
		require.NoError(t, err)
		return st.Categories[0].Entries[1].Content.(store.Encrypted).Envelope
	}

	first := envelope()
	require.NoError(t, svc.UpdateContent(defaultCategory, "Secret", "same", "pw"))
	require.NotEqual(t, first, envelope())
}

func TestUpdateEntry_CollidingRename_ContentUnchanged(t *testing.T) {
	svc, fs := newService(t)
	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{Title: "B", Content: "original"}))

	before, err := os.ReadFile(fs.Path)
	require.NoError(t, err)

	title, content := "Example Text", "CHANGED"
	err = svc.UpdateEntry(defaultCategory, "B", &title, &content, "")
	require.ErrorIs(t, err, serr.ErrDuplicateTitle)

	got, err := svc.ReadEntry(defaultCategory, "B", "")
	require.NoError(t, err)
	require.Equal(t, "original", got)

	after, err := os.ReadFile(fs.Path)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestUpdateEntry_TitleAndContent(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{
		Title: "pin", Content: "1234", Encrypt: true, Password: "pw",
	}))

	title, content := "PIN", "9999"
	require.ErrorIs(t, svc.UpdateEntry(defaultCategory, "pin", &title, &content, ""), serr.ErrPasswordRequired)
	require.Equal(t, []string{"Example Text", "pin"}, titles(t, svc, defaultCategory))

	require.NoError(t, svc.UpdateEntry(defaultCategory, "pin", &title, &content, "pw"))
	require.Equal(t, []string{"Example Text", "PIN"}, titles(t, svc, defaultCategory))

	got, err := svc.ReadEntry(defaultCategory, "PIN", "pw")
	require.NoError(t, err)
	require.Equal(t, "9999", got)

	require.ErrorIs(t, svc.UpdateEntry(defaultCategory, "PIN", nil, nil, ""), serr.ErrInvalidInput)
}

func TestPassword_WhitespaceOnly_Rejected(t *testing.T) {
	svc, _ := newService(t)

	err := svc.AddEntry(defaultCategory, service.NewEntry{Title: "pin", Content: "1", Encrypt: true, Password: "   "})
	require.ErrorIs(t, err, serr.ErrPasswordRequired)

	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{Title: "pin", Content: "1", Encrypt: true, Password: " pw "}))

	_, err = svc.ReadEntry(defaultCategory, "pin", "\t ")
	require.ErrorIs(t, err, serr.ErrPasswordRequired)
	require.ErrorIs(t, svc.UpdateContent(defaultCategory, "pin", "2", "  "), serr.ErrPasswordRequired)

	// пароль не обрезается: " pw " и "pw" - разные пароли
	got, err := svc.ReadEntry(defaultCategory, "pin", " pw ")
	require.NoError(t, err)
	require.Equal(t, "1", got)
}

func TestAddEntry_ValuesKeptVerbatim(t *testing.T) {
	svc, fs := newService(t)

	values := map[string]string{
		"quoted":    `"hello"`,
		"single":    `'hello'`,
		"backslash": `ends with backslash\`,
		"hash":      "a # b ; c",
		"multi":     "first\n  indented\n\n\tlast",
		"triple":    `a """ b`,
		"section":   "x\n[Category 1]\nitem1_title = y",
	}
	for title, content := range values {
		require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{Title: title, Content: content}), title)
	}
	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{Title: `"quoted title"`, Content: "t"}))

	fresh := service.New(fs, service.Options{Language: "en", KDF: testKDF()}, nil)
	for title, content := range values {
		got, err := fresh.ReadEntry(defaultCategory, title, "")
		require.NoError(t, err, title)
		require.Equal(t, content, got, title)
	}
	_, err := fresh.ReadEntry(defaultCategory, `"quoted title"`, "")
	require.NoError(t, err)
}

func TestAddEntry_UnstorableContent_StoreIntact(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.AddCategory("Work"))
	require.NoError(t, svc.AddEntry("Work", service.NewEntry{Title: "mail", Content: "w@example.com"}))

	for _, content := range []string{`"""`, `"""x`, "`tick`", " leading", "trailing ", "x\r\ny"} {
		err := svc.AddEntry(defaultCategory, service.NewEntry{Title: "q", Content: content})
		require.ErrorIs(t, err, serr.ErrInvalidInput, "%q", content)
	}

	require.NoError(t, svc.AddEntry(defaultCategory, service.NewEntry{Title: "next", Content: "ok"}))

	names, err := svc.Categories()
	require.NoError(t, err)
	require.Equal(t, []string{defaultCategory, "Work"}, names)
	require.Equal(t, []string{"mail"}, titles(t, svc, "Work"))
}
