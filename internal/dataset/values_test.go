package dataset

import "testing"

func TestNullInt64UnmarshalCSV(t *testing.T) {
	tests := []struct {
		raw     string
		want    NullInt64
		wantErr bool
	}{
		{raw: "52", want: Int(52)},
		{raw: "52.0", want: Int(52)},
		{raw: "NA", want: NullInt64{}},
		{raw: "", want: NullInt64{}},
		{raw: "52.5", wantErr: true},
		{raw: "abc", wantErr: true},
	}
	for _, tt := range tests {
		var got NullInt64
		err := got.UnmarshalCSV(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("UnmarshalCSV(%q) expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("UnmarshalCSV(%q): %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("UnmarshalCSV(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestNullValuesMarshalNA(t *testing.T) {
	if s, _ := (NullInt64{}).MarshalCSV(); s != "NA" {
		t.Fatalf("null int marshals as %q", s)
	}
	if s, _ := Float(1.5).MarshalCSV(); s != "1.5" {
		t.Fatalf("float marshals as %q", s)
	}
	if s, _ := Category("").MarshalCSV(); s != "NA" {
		t.Fatalf("empty category marshals as %q", s)
	}
}

func TestCategoryUnmarshalCSV(t *testing.T) {
	var c Category
	if err := c.UnmarshalCSV("NA"); err != nil || c != "" {
		t.Fatalf("NA category = %q, %v", c, err)
	}
	if err := c.UnmarshalCSV("SHOTGUN"); err != nil || c != "SHOTGUN" {
		t.Fatalf("category = %q, %v", c, err)
	}
}

func TestDateUnmarshalCSV(t *testing.T) {
	var d Date
	if err := d.UnmarshalCSV("09/08/2022"); err != nil {
		t.Fatalf("UnmarshalCSV: %v", err)
	}
	if d.Year() != 2022 || d.Month() != 9 || d.Day() != 8 {
		t.Fatalf("date = %v", d.Time)
	}
	if err := d.UnmarshalCSV("2022-09-11"); err != nil || d.Day() != 11 {
		t.Fatalf("iso date = %v, %v", d.Time, err)
	}
	if err := d.UnmarshalCSV("Sept 8"); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}
