package syntax

import "testing"

func TestLanguageByName(t *testing.T) {
	if lang := LanguageByName("c"); lang == nil || lang.Name != "C" {
		t.Error("expected the C definition")
	}
	if lang := LanguageByName("CPP"); lang == nil || lang.Name != "C++" {
		t.Error("expected cpp to alias C++")
	}
	if lang := LanguageByName("SQL"); lang == nil || lang.CaseSensitive {
		t.Error("expected SQL to be case-insensitive")
	}
	if LanguageByName("cobol") != nil {
		t.Error("expected unknown language to be nil")
	}
}

func TestLanguageNames(t *testing.T) {
	names := LanguageNames()
	if len(names) == 0 {
		t.Fatal("expected registered languages")
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"C", "C++", "Lua", "Python", "JSON", "SQL"} {
		if !seen[want] {
			t.Errorf("expected %q registered", want)
		}
	}
}

func TestDefinitionsShareTheFastPath(t *testing.T) {
	for _, name := range []string{"c", "cpp"} {
		if lang := LanguageByName(name); lang.Tokenize == nil {
			t.Errorf("%s: expected a fast-path tokenizer", name)
		}
	}
	for _, name := range []string{"lua", "json"} {
		if lang := LanguageByName(name); lang.Tokenize != nil {
			t.Errorf("%s: expected regex-only tokenization", name)
		}
	}
}
