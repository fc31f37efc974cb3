package ui

import (
	"bytes"
	"embed"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ifcdash/adapters/excel"
	"ifcdash/adapters/ifcstep"
	"ifcdash/adapters/pdf"
	"ifcdash/internal/config"
)

//go:embed templates static
var testAssets embed.FS

const sampleModel = `ISO-10303-21;
HEADER;
ENDSEC;
DATA;
#1=IFCWALL('a1',#9,'Wall:01',$,$,$,$,$,.NOTDEFINED.);
#2=IFCWALL('a2',#9,'Wall:02',$,$,$,$,$,.NOTDEFINED.);
#3=IFCWALL('a3',#9,'Wall:03',$,$,$,$,$,.NOTDEFINED.);
#4=IFCWALL('a4',#9,'Wall:04',$,$,$,$,$,.NOTDEFINED.);
#5=IFCWALL('a5',#9,'Wall:05',$,$,$,$,$,.NOTDEFINED.);
#6=IFCDOOR('b1',#9,'Door:01',$,$,$,$,$,2.1,0.9);
#7=IFCDOOR('b2',#9,'Door:02',$,$,$,$,$,2.1,0.9);
#8=IFCDOOR('b3',#9,'Door:03',$,$,$,$,$,2.1,0.9);
ENDSEC;
END-ISO-10303-21;
`

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", GinMode: "test"},
		Upload: config.UploadConfig{
			ScratchDir:          t.TempDir(),
			MaxBytes:            1 << 20,
			MaxConcurrentParses: 2,
		},
	}

	s, err := NewServer(cfg, ifcstep.NewParser(), excel.NewReader(), pdf.NewExporter(), testAssets)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func uploadRequest(t *testing.T, url string, files map[string]string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for field, content := range files {
		part, err := w.CreateFormFile(field, field+".ifc")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestPages(t *testing.T) {
	s := testServer(t)

	for _, path := range []string{"/", "/ifc", "/excel", "/compare"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			if rec.Code != http.StatusOK {
				t.Errorf("GET %s = %d", path, rec.Code)
			}
		})
	}
}

func TestHelpPageRendersMarkdown(t *testing.T) {
	s := testServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/help", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /help = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<h1>") {
		t.Error("help page does not contain rendered markdown headings")
	}
}

func TestIFCAnalyzeEndToEnd(t *testing.T) {
	s := testServer(t)

	req := uploadRequest(t, "/ifc/analyze", map[string]string{"file": sampleModel}, map[string]string{"chart": "pie"})
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Series struct {
			Kind   string   `json:"kind"`
			Labels []string `json:"labels"`
			Values []int    `json:"values"`
		} `json:"series"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	if resp.Total != 8 {
		t.Errorf("total = %d, want 8", resp.Total)
	}
	if resp.Series.Kind != "pie" {
		t.Errorf("kind = %q, want pie", resp.Series.Kind)
	}
	if len(resp.Series.Labels) != 2 || resp.Series.Labels[0] != "IfcWall" || resp.Series.Values[0] != 5 {
		t.Errorf("series = %+v, want IfcWall:5 first", resp.Series)
	}
	if resp.Series.Labels[1] != "IfcDoor" || resp.Series.Values[1] != 3 {
		t.Errorf("series = %+v, want IfcDoor:3 second", resp.Series)
	}
}

func TestIFCAnalyzeParseFailure(t *testing.T) {
	s := testServer(t)

	req := uploadRequest(t, "/ifc/analyze", map[string]string{"file": "garbage bytes"}, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestExcelCompareUnknownColumn(t *testing.T) {
	s := testServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, content := range map[string]string{
		"file_a": "Area,Zone\n10,north\n",
		"file_b": "Area,Zone\n5,east\n",
	} {
		part, err := w.CreateFormFile(field, field+".csv")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.WriteField("columns", "Volume"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/excel/compare", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a requested column missing from both files", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Volume") {
		t.Errorf("body = %s, want the missing column named", rec.Body.String())
	}
}

func TestExportPDF(t *testing.T) {
	s := testServer(t)

	payload := `{"kind":"series","title":"Counts","series":{"kind":"bar","labels":["IfcWall","IfcDoor"],"values":[5,3]}}`
	req := httptest.NewRequest(http.MethodPost, "/export/pdf", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("response is not a PDF document")
	}
}

func TestExportPDFUnknownKind(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/export/pdf", strings.NewReader(`{"kind":"hologram"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
