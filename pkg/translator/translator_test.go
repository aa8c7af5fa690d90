package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"staffhub/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

func TestInitTranslator_LoadsMessages(t *testing.T) {
	dir := t.TempDir()

	content := []byte(`
taskNotFound = "Task not found."
hello = "Hello english"
`)
	if err := os.WriteFile(filepath.Join(dir, "en.toml"), content, 0644); err != nil {
		t.Fatalf("failed to write en.toml: %v", err)
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	localizer := i18n.NewLocalizer(translator.Translator, translator.LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "hello"})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if msg != "Hello english" {
		t.Errorf("expected %q, got %q", "Hello english", msg)
	}
}

func TestInitTranslator_SkipsNonTomlFiles(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not toml"), 0644); err != nil {
		t.Fatalf("failed to write notes.txt: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "en.toml"), []byte(`hello = "Hello"`), 0644); err != nil {
		t.Fatalf("failed to write en.toml: %v", err)
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn},
	})

	localizer := i18n.NewLocalizer(translator.Translator, translator.LanguageEn)
	if msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "hello"}); err != nil || msg != "Hello" {
		t.Errorf("expected hello message, got %q err %v", msg, err)
	}
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
}
