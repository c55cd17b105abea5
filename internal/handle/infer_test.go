package handle

import "testing"

func TestInfer(t *testing.T) {
	defaultOpts := Options{AllowTrailing: true}

	tests := []struct {
		name   string
		stem   string
		opts   Options
		want   string
		wantOK bool
	}{
		{
			name:   "handle with date and id tail",
			stem:   "johnsmith_20230815_123456789",
			opts:   defaultOpts,
			want:   "johnsmith",
			wantOK: true,
		},
		{
			name:   "camera filename",
			stem:   "IMG_2048",
			opts:   defaultOpts,
			wantOK: false,
		},
		{
			name:   "underscore handle preserved",
			stem:   "__zzz___oo0_4821",
			opts:   defaultOpts,
			want:   "__zzz___oo0",
			wantOK: true,
		},
		{
			name:   "at handle with bracket suffix",
			stem:   "@cool.guy99 (1)",
			opts:   defaultOpts,
			want:   "cool.guy99",
			wantOK: true,
		},
		{
			name:   "digit-dominated stem",
			stem:   "rnd_8281992017382",
			opts:   Options{},
			wantOK: false,
		},
		{
			// Ten letters against thirteen digits stays under the 3:1
			// noise ratio, so the prefix survives tail trimming.
			name:   "long prefix with id tail",
			stem:   "randomname_8281992017382",
			opts:   Options{},
			want:   "randomname",
			wantOK: true,
		},
		{
			name:   "at fallback after camera-prefixed stem",
			stem:   "photo by @someone_12345",
			opts:   defaultOpts,
			want:   "someone_12345",
			wantOK: true,
		},
		{
			name:   "strict start disables fallbacks",
			stem:   "photo by @someone_12345",
			opts:   Options{StrictStart: true},
			wantOK: false,
		},
		{
			name:   "trailing fallback",
			stem:   "IMG 20230815 johnsmith 123456789",
			opts:   defaultOpts,
			want:   "johnsmith",
			wantOK: true,
		},
		{
			name:   "trailing fallback disabled",
			stem:   "IMG 20230815 johnsmith 123456789",
			opts:   Options{},
			wantOK: false,
		},
		{
			name:   "unicode handle",
			stem:   "фотограф_20230815",
			opts:   defaultOpts,
			want:   "фотограф",
			wantOK: true,
		},
		{
			name:   "empty stem",
			stem:   "",
			opts:   defaultOpts,
			wantOK: false,
		},
		{
			name:   "decoration only",
			stem:   "!!!",
			opts:   defaultOpts,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Infer(tt.stem, tt.opts)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Infer(%q) = (%q, %v), want (%q, %v)",
					tt.stem, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// Stems the tokenizer reduces to nothing must yield no handle in
// strict-start mode.
func TestInfer_StrictStartEmptyTokens(t *testing.T) {
	opts := Options{StrictStart: true}
	for _, stem := range []string{"", "!!!", "###", "---"} {
		if got, ok := Infer(stem, opts); ok {
			t.Errorf("Infer(%q) = %q, want no handle", stem, got)
		}
	}
}

// Re-running the pipeline on an accepted handle without a numeric tail
// returns that same handle.
func TestInfer_Idempotence(t *testing.T) {
	opts := Options{AllowTrailing: true}
	handles := []string{
		"johnsmith",
		"cool.guy99",
		"__zzz___oo0",
		"фотограф",
	}
	for _, h := range handles {
		got, ok := Infer(h, opts)
		if !ok || got != h {
			t.Errorf("Infer(%q) = (%q, %v), want (%q, true)", h, got, ok, h)
		}
	}
}

func TestInferrer_Reuse(t *testing.T) {
	in := NewInferrer(DefaultRules(), Options{AllowTrailing: true})

	// The same Inferrer must give stable answers across calls.
	for i := 0; i < 3; i++ {
		got, ok := in.Infer("johnsmith_20230815")
		if !ok || got != "johnsmith" {
			t.Fatalf("Infer = (%q, %v), want (johnsmith, true)", got, ok)
		}
	}
}

func TestInfer_CustomRules(t *testing.T) {
	rules := DefaultRules()
	rules.CameraPrefixes = append(rules.CameraPrefixes, "mycam")

	in := NewInferrer(rules, Options{})
	if got, ok := in.Infer("mycam_0001"); ok {
		t.Errorf("Infer(mycam_0001) = %q, want rejection with custom prefix", got)
	}

	// The stock table does not know the custom prefix.
	def := NewInferrer(DefaultRules(), Options{})
	if got, ok := def.Infer("mycam_0001"); !ok || got != "mycam" {
		t.Errorf("Infer(mycam_0001) = (%q, %v), want (mycam, true)", got, ok)
	}
}
