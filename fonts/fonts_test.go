package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(10); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Mono, MonoSmall} {
		if !Loaded(name) {
			t.Fatalf("%s not loaded", name)
		}
		if name.Get() == nil {
			t.Fatalf("%s has no face", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Fatalf("expected parse error")
	}
	if Loaded("broken") {
		t.Fatalf("broken font was registered")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
