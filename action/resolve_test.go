package action

import (
	"errors"
	"slices"
	"testing"
)

func TestCatalogResolve(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name              string
		kind              Kind
		requiresArguments bool
	}{
		{"create", KindCreate, false},
		{"list", KindList, false},
		{"edit", KindEdit, true},
		{"done", KindDone, true},
		{"undone", KindUndone, true},
		{"delete", KindDelete, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := catalog.Resolve(tt.name)
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.name, err)
			}
			if spec.Kind != tt.kind || spec.RequiresArguments != tt.requiresArguments {
				t.Errorf("Resolve(%q) = %+v", tt.name, spec)
			}
			if spec.Kind.String() != tt.name {
				t.Errorf("Kind.String() = %q, want %q", spec.Kind.String(), tt.name)
			}
		})
	}
}

func TestCatalogResolve_Unknown(t *testing.T) {
	catalog := DefaultCatalog()

	for _, name := range []string{"frobnicate", "", "Create", "list "} {
		_, err := catalog.Resolve(name)
		if !errors.Is(err, ErrUnknownAction) {
			t.Errorf("Resolve(%q) = %v, want %v", name, err, ErrUnknownAction)
		}
		if !errors.Is(err, ErrInput) {
			t.Errorf("Resolve(%q) = %v, want it to match %v", name, err, ErrInput)
		}
	}
}

func TestDefaultCatalogNames(t *testing.T) {
	want := []string{"create", "list", "edit", "done", "undone", "delete"}
	if got := DefaultCatalog().Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	_, err := NewCatalog(
		Spec{Kind: KindCreate, Name: "create"},
		Spec{Kind: KindList, Name: "create"},
	)
	if err == nil {
		t.Fatal("expected duplicate action error")
	}
}

func TestNewCatalog_CopiesSpecs(t *testing.T) {
	specs := []Spec{{Kind: KindList, Name: "list"}}
	catalog, err := NewCatalog(specs...)
	if err != nil {
		t.Fatalf("NewCatalog() unexpected error: %v", err)
	}

	specs[0].Name = "mutated"
	if _, err := catalog.Resolve("list"); err != nil {
		t.Errorf("catalog changed after caller mutation: %v", err)
	}
}

func TestBind_MissingArguments(t *testing.T) {
	logger := &recordingLogger{}
	spec := Spec{Kind: KindList, Name: "list", RequiresArguments: true}

	_, err := Bind(nil, spec, logger)
	if !errors.Is(err, ErrMissingArguments) {
		t.Fatalf("expected ErrMissingArguments, got %v", err)
	}
	if len(logger.warnings) != 0 {
		t.Errorf("expected no warnings, got %v", logger.warnings)
	}
}

func TestBind_UnusedArgumentsWarnsAndKeeps(t *testing.T) {
	logger := &recordingLogger{}
	spec := Spec{Kind: KindCreate, Name: "create"}

	action, err := Bind([]string{"x"}, spec, logger)
	if err != nil {
		t.Fatalf("Bind() unexpected error: %v", err)
	}
	if !slices.Equal(action.Arguments, []string{"x"}) {
		t.Errorf("Arguments = %v, want [x]", action.Arguments)
	}
	if len(logger.warnings) != 1 {
		t.Errorf("expected exactly one warning, got %v", logger.warnings)
	}
}

func TestBind_RequiredArguments(t *testing.T) {
	logger := &recordingLogger{}
	spec := Spec{Kind: KindDone, Name: "done", RequiresArguments: true}

	action, err := Bind([]string{"2", "extra"}, spec, logger)
	if err != nil {
		t.Fatalf("Bind() unexpected error: %v", err)
	}
	if !slices.Equal(action.Arguments, []string{"2", "extra"}) {
		t.Errorf("Arguments = %v", action.Arguments)
	}
	if action.Spec != spec {
		t.Errorf("Spec = %+v, want %+v", action.Spec, spec)
	}
	if len(logger.warnings) != 0 {
		t.Errorf("expected no warnings, got %v", logger.warnings)
	}
}

func TestBind_NoArgumentsNotRequired(t *testing.T) {
	logger := &recordingLogger{}

	action, err := Bind(nil, Spec{Kind: KindList, Name: "list"}, logger)
	if err != nil {
		t.Fatalf("Bind() unexpected error: %v", err)
	}
	if len(action.Arguments) != 0 || len(logger.warnings) != 0 {
		t.Errorf("unexpected result %+v, warnings %v", action, logger.warnings)
	}
}

func TestParse(t *testing.T) {
	logger := &recordingLogger{}

	action, err := Parse([]string{"delete", "3"}, DefaultCatalog(), logger)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if action.Spec.Kind != KindDelete || !slices.Equal(action.Arguments, []string{"3"}) {
		t.Errorf("Parse() = %+v", action)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		wantErr error
	}{
		{"no tokens", nil, ErrMissingAction},
		{"unknown", []string{"frobnicate"}, ErrUnknownAction},
		{"missing index", []string{"edit"}, ErrMissingArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.tokens, DefaultCatalog(), &recordingLogger{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) = %v, want %v", tt.tokens, err, tt.wantErr)
			}
			if !errors.Is(err, ErrInput) {
				t.Errorf("Parse(%q) = %v, want it to match %v", tt.tokens, err, ErrInput)
			}
		})
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name      string
		arguments []string
		want      int
		wantErr   bool
	}{
		{"first", []string{"1"}, 0, false},
		{"tenth", []string{"10", "ignored"}, 9, false},
		{"zero", []string{"0"}, 0, true},
		{"negative", []string{"-2"}, 0, true},
		{"non-numeric", []string{"two"}, 0, true},
		{"missing", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIndex(tt.arguments)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidIndex) {
					t.Fatalf("ParseIndex(%q) = %v, want %v", tt.arguments, err, ErrInvalidIndex)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIndex(%q) unexpected error: %v", tt.arguments, err)
			}
			if got != tt.want {
				t.Errorf("ParseIndex(%q) = %d, want %d", tt.arguments, got, tt.want)
			}
		})
	}
}
