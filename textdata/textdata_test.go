package textdata

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

const histoSample = `# Histograma de estancias
# Tiempo medio: 2.5
0.5 10
1.5 6

2.5 3
# comment in the middle
3.5 1 7
not numbers
4.5 1
`

func TestReadHistogram(Te *testing.T) {
	fmt.Println("Histogram read test!")
	H, err := ReadHistogram(strings.NewReader(histoSample), "V_1.txt")
	if err != nil {
		Te.Fatal(err)
	}
	if !H.HasMeanTime || H.MeanTime != 2.5 {
		Te.Errorf("mean time: got %v %v, want 2.5", H.HasMeanTime, H.MeanTime)
	}
	wantx := []float64{0.5, 1.5, 2.5, 4.5}
	wanty := []float64{10, 6, 3, 1}
	if H.Len() != len(wantx) {
		Te.Fatalf("got %d rows, want %d", H.Len(), len(wantx))
	}
	for i := range wantx {
		if H.X[i] != wantx[i] || H.Y[i] != wanty[i] {
			Te.Errorf("row %d: got %v %v want %v %v", i, H.X[i], H.Y[i], wantx[i], wanty[i])
		}
	}
	if err := H.Check(); err != nil {
		Te.Error(err)
	}
}

func TestHistogramCheck(Te *testing.T) {
	H, err := ReadHistogram(strings.NewReader("0.5 1\n1.5 2\n"), "noheader.txt")
	if err != nil {
		Te.Fatal(err)
	}
	err = H.Check()
	if err == nil || !strings.Contains(err.Error(), MissingHeader) {
		Te.Errorf("expected missing header error, got %v", err)
	}
	H, err = ReadHistogram(strings.NewReader("# Tiempo medio: 1.0\n# nothing else\n"), "nodata.txt")
	if err != nil {
		Te.Fatal(err)
	}
	err = H.Check()
	if err == nil || !strings.Contains(err.Error(), NoData) {
		Te.Errorf("expected no data error, got %v", err)
	}
	_, err = ReadHistogram(strings.NewReader("# Tiempo medio: abc\n1 1\n"), "bad.txt")
	if err == nil {
		Te.Error("expected an error for a malformed header")
	}
}

func TestDigits(Te *testing.T) {
	cases := map[string]string{
		"V_12.txt":        "12",
		"hist_V_3_a7.txt": "37",
		"E-M.txt":         "",
	}
	for in, want := range cases {
		if got := Digits(in); got != want {
			Te.Errorf("Digits(%q)=%q, want %q", in, got, want)
		}
	}
	if got := ParamFileName("R-K", "/some/dir/hist_R-K_4.txt"); got != "R-K_4.txt" {
		Te.Errorf("ParamFileName: got %s", got)
	}
}

func TestLookupEta(Te *testing.T) {
	dir := Te.TempDir()
	params := "# Parametros\nK 1\nkb 1\neta 0.75 extra\nT 2\n"
	if err := os.WriteFile(filepath.Join(dir, "V_7.txt"), []byte(params), 0644); err != nil {
		Te.Fatal(err)
	}
	p := LookupEta(dir, "V", "V_7.txt")
	if !p.Found || p.Value != 0.75 {
		Te.Errorf("got %+v, want 0.75", p)
	}
	p = LookupEta(dir, "V", "V_8.txt")
	if p.Found || !IsNotFound(p.Err) {
		Te.Errorf("expected a not-found result, got %+v", p)
	}
	if err := os.WriteFile(filepath.Join(dir, "V_9.txt"), []byte("a\nb\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	p = LookupEta(dir, "V", "V_9.txt")
	if p.Found || p.Err == nil || IsNotFound(p.Err) {
		Te.Errorf("expected a malformed-file result, got %+v", p)
	}
}

func TestLoadColumns(Te *testing.T) {
	T, err := LoadColumns(strings.NewReader("1 2 0.1\n2 3 0.2\n# c\n4 5 0.3\n"), "t", 2, 3)
	if err != nil {
		Te.Fatal(err)
	}
	if T.Rows() != 3 || T.Cols() != 3 {
		Te.Fatalf("got %dx%d table", T.Rows(), T.Cols())
	}
	if c := T.Col(1); c[2] != 5 {
		Te.Errorf("column 1: %v", c)
	}
	//single row
	T, err = LoadColumns(strings.NewReader("10 1.28 0.01\n"), "one", 2, 3)
	if err != nil {
		Te.Fatal(err)
	}
	if T.Rows() != 1 || T.Col(0)[0] != 10 {
		Te.Errorf("single row table: %v", T.Col(0))
	}
	//missing column gives zeros
	T, err = LoadColumns(strings.NewReader("10 1.28\n20 1.8\n"), "two", 2, 3)
	if err != nil {
		Te.Fatal(err)
	}
	if e := T.Col(2); len(e) != 2 || e[0] != 0 || e[1] != 0 {
		Te.Errorf("missing column: %v", e)
	}
	if _, err := LoadColumns(strings.NewReader("1 2\n1 2 3\n"), "ragged", 2, 3); err == nil {
		Te.Error("expected an error for a ragged table")
	}
	if _, err := LoadColumns(strings.NewReader("# only comments\n"), "empty", 2, 3); err == nil {
		Te.Error("expected an error for an empty table")
	}
	if _, err := LoadColumnsFile(filepath.Join(Te.TempDir(), "nope.txt"), 2, 3); !IsNotFound(err) {
		Te.Errorf("expected a not-found error, got %v", err)
	}
}

func TestCompressedInput(Te *testing.T) {
	dir := Te.TempDir()
	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	w.Write([]byte(histoSample))
	w.Close()
	if err := os.WriteFile(filepath.Join(dir, "V_1.txt.gz"), gz.Bytes(), 0644); err != nil {
		Te.Fatal(err)
	}
	var zs bytes.Buffer
	zw, err := zstd.NewWriter(&zs)
	if err != nil {
		Te.Fatal(err)
	}
	zw.Write([]byte(histoSample))
	zw.Close()
	if err := os.WriteFile(filepath.Join(dir, "V_2.txt.zst"), zs.Bytes(), 0644); err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{"V_1.txt.gz", "V_2.txt.zst"} {
		H, err := ReadHistogramFile(filepath.Join(dir, name))
		if err != nil {
			Te.Fatal(err)
		}
		if H.Len() != 4 || H.MeanTime != 2.5 {
			Te.Errorf("%s: got %d rows, mean time %v", name, H.Len(), H.MeanTime)
		}
	}
	if TrimCompression("a.txt.zst") != "a.txt" || TrimCompression("a.txt.gz") != "a.txt" {
		Te.Error("TrimCompression")
	}
}

func TestReadN(Te *testing.T) {
	n, err := ReadN(strings.NewReader("# params\nK 100\nNx 3\nN 12\ndt 0.01\n"))
	if err != nil || n != 12 {
		Te.Errorf("got %d %v, want 12", n, err)
	}
	if _, err := ReadN(strings.NewReader("K 1\n")); err == nil {
		Te.Error("expected an error without an N line")
	}
	kv, err := ReadKeyValues(strings.NewReader("PROMEDIO_R_G 1.5\nERROR_R_G 0.1\nERROR_R_G 0.2\nModo FIXED: NO\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if kv["PROMEDIO_R_G"] != 1.5 || kv["ERROR_R_G"] != 0.2 || len(kv) != 2 {
		Te.Errorf("key values: %v", kv)
	}
}

func TestDropCompressedTwins(Te *testing.T) {
	names := []string{"V_1.txt", "V_1.txt.gz", "V_1.txt.zst", "V_10.txt.gz", "V_2.txt.zst", "V_2.txt.gz"}
	kept, dropped := DropCompressedTwins(names)
	want := []string{"V_1.txt", "V_10.txt.gz", "V_2.txt.zst"}
	if strings.Join(kept, " ") != strings.Join(want, " ") {
		Te.Errorf("kept %v, want %v", kept, want)
	}
	if strings.Join(dropped, " ") != "V_1.txt.gz V_1.txt.zst V_2.txt.gz" {
		Te.Errorf("dropped %v", dropped)
	}
}
