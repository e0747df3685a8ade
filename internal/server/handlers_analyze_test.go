package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/builder"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeData_Empty(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := doJSON(t, s, http.MethodPost, "/api/analyze", "{}", nil)

	require.Equal(t, http.StatusOK, w.Code)
	result := decode[types.ATSResult](t, w)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "Needs Work", result.Grade)
	assert.Len(t, result.Factors, 7)
}

func TestAnalyzeData_Complete(t *testing.T) {
	s := newTestServer(t, testConfig())
	data := types.ResumeData{
		Template: "ivy-league",
		Personal: types.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com", Phone: "555-0100"},
		Summary:  "Backend engineer",
		Skills:   []string{"Go", "SQL"},
	}

	w := doJSON(t, s, http.MethodPost, "/api/analyze", data, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, builder.CalculateATSScore(data), decode[types.ATSResult](t, w))
}

func TestAnalyzeData_Rejects(t *testing.T) {
	s := newTestServer(t, testConfig())

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"invalid JSON", "{not json", "invalid JSON"},
		{"unknown template", `{"template": "comic-sans"}`, "unknown template"},
		{"bad email", `{"personal": {"email": "not-an-email"}}`, "Personal.Email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, s, http.MethodPost, "/api/analyze", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode[map[string]string](t, w)["error"], tt.wantErr)
		})
	}
}

func TestAnalyzeText(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := doJSON(t, s, http.MethodPost, "/api/analyze/text", types.AnalyzeTextRequest{Text: analysis.SampleResume}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, analysis.Analyze(analysis.SampleResume), decode[types.ScoreReport](t, w))
}

func TestAnalyzeText_EmptyText(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := doJSON(t, s, http.MethodPost, "/api/analyze/text", `{"text": "   "}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	report := decode[types.ScoreReport](t, w)
	assert.Equal(t, 0, report.OverallScore)
	assert.Len(t, report.Suggestions, 2)
}

func TestAnalyzeText_TooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.MaxUploadBytes = 64
	s := newTestServer(t, cfg)

	w := doJSON(t, s, http.MethodPost, "/api/analyze/text", types.AnalyzeTextRequest{Text: strings.Repeat("a", 200)}, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestAnalyzeUpload(t *testing.T) {
	s := newTestServer(t, testConfig())
	body, contentType := multipartUpload(t, "resume.txt", []byte(analysis.SampleResume))

	w := do(t, s, http.MethodPost, "/api/analyze/upload", body, map[string]string{"Content-Type": contentType})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	text, err := extract.Extract("resume.txt", []byte(analysis.SampleResume))
	require.NoError(t, err)
	assert.Equal(t, analysis.Analyze(text), decode[types.ScoreReport](t, w))
}

func TestAnalyzeUpload_Errors(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		content    []byte
		maxBytes   int64
		wantStatus int
	}{
		{"legacy word", "resume.doc", []byte("\xd0\xcf\x11\xe0 binary"), 0, http.StatusUnsupportedMediaType},
		{"corrupt pdf", "resume.pdf", []byte("this is not a pdf"), 0, http.StatusUnprocessableEntity},
		{"missing file", "", nil, 0, http.StatusBadRequest},
		{"too large", "resume.txt", []byte(strings.Repeat("x", 4096)), 1024, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.maxBytes > 0 {
				cfg.MaxUploadBytes = tt.maxBytes
			}
			s := newTestServer(t, cfg)
			body, contentType := multipartUpload(t, tt.filename, tt.content)

			w := do(t, s, http.MethodPost, "/api/analyze/upload", body, map[string]string{"Content-Type": contentType})

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[map[string]string](t, w)["error"])
		})
	}
}

func TestAnalyzeUpload_NotMultipart(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := doJSON(t, s, http.MethodPost, "/api/analyze/upload", `{"text": "x"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeURL(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/resume.txt" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(analysis.SampleResume))
	}))
	defer site.Close()

	s := newTestServer(t, testConfig())

	t.Run("success", func(t *testing.T) {
		w := doJSON(t, s, http.MethodPost, "/api/analyze/url", types.AnalyzeURLRequest{URL: site.URL + "/resume.txt"}, nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		expected := analysis.Analyze(extract.CleanText(analysis.SampleResume))
		assert.Equal(t, expected, decode[types.ScoreReport](t, w))
	})

	t.Run("upstream 404", func(t *testing.T) {
		w := doJSON(t, s, http.MethodPost, "/api/analyze/url", types.AnalyzeURLRequest{URL: site.URL + "/missing"}, nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, decode[map[string]string](t, w)["error"], "HTTP status 404")
	})

	t.Run("invalid url", func(t *testing.T) {
		w := doJSON(t, s, http.MethodPost, "/api/analyze/url", `{"url": "not a url"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing url", func(t *testing.T) {
		w := doJSON(t, s, http.MethodPost, "/api/analyze/url", `{}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[map[string]string](t, w)["error"], "is required")
	})
}

func TestAnalyzeURL_RejectsPrivateHosts(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(analysis.SampleResume))
	}))
	defer site.Close()

	cfg := testConfig()
	cfg.Fetch.AllowPrivateHosts = false
	s := newTestServer(t, cfg)

	for _, target := range []string{site.URL + "/resume.txt", "http://169.254.169.254/latest/meta-data/"} {
		w := doJSON(t, s, http.MethodPost, "/api/analyze/url", types.AnalyzeURLRequest{URL: target}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, decode[map[string]string](t, w)["error"], "not publicly routable")
	}
}
