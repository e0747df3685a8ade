package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeAll_PreservesOrder(t *testing.T) {
	// Earlier inputs finish last.
	delays := []time.Duration{30 * time.Millisecond, 20 * time.Millisecond, 10 * time.Millisecond, 0}
	inputs := make([]input, len(delays))
	for i, d := range delays {
		source := string(rune('a' + i))
		inputs[i] = input{source: source, load: func(context.Context) (string, error) {
			time.Sleep(d)
			return "Experience Education Skills " + source, nil
		}}
	}

	results, err := analyzeAll(context.Background(), inputs, 4)
	require.NoError(t, err)
	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, string(rune('a'+i)), r.Source)
	}
}

func TestAnalyzeAll_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	inputs := make([]input, 8)
	for i := range inputs {
		inputs[i] = input{source: "x", load: func(context.Context) (string, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return "text", nil
		}}
	}

	_, err := analyzeAll(context.Background(), inputs, 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestAnalyzeAll_ReportsFailingSource(t *testing.T) {
	inputs := []input{
		textInput("ok", "resume"),
		{source: "broken.pdf", load: func(context.Context) (string, error) {
			return "", errors.New("boom")
		}},
	}

	_, err := analyzeAll(context.Background(), inputs, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.pdf: boom")
}

func TestFileInput(t *testing.T) {
	path := writeFile(t, "resume.md", analysis.SampleResume)

	text, err := fileInput(path).load(context.Background())
	require.NoError(t, err)
	expected, err := extract.Extract("resume.md", []byte(analysis.SampleResume))
	require.NoError(t, err)
	assert.Equal(t, expected, text)

	_, err = fileInput(writeFile(t, "resume.doc", "binary")).load(context.Background())
	var unsupported *extract.UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)

	_, err = fileInput("/nonexistent/resume.txt").load(context.Background())
	assert.ErrorContains(t, err, "failed to read")
}

func TestURLInput(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><nav>Home</nav><main><h1>Jane Doe</h1><p>Go engineer</p></main></body></html>`))
	}))
	defer site.Close()

	text, err := urlInput(site.URL, &fetch.Options{Timeout: 5 * time.Second}).load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo engineer", text)
}

func TestWriteResults_JSON(t *testing.T) {
	one := []types.AnalysisResponse{{Source: "sample", Report: analysis.Analyze(analysis.SampleResume)}}

	var buf bytes.Buffer
	require.NoError(t, writeResults(&buf, formatJSON, one))
	var single types.AnalysisResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &single))
	assert.Equal(t, "sample", single.Source)
	assert.Equal(t, one[0].Report.OverallScore, single.Report.OverallScore)

	buf.Reset()
	two := append(one, types.AnalysisResponse{Source: "empty", Report: analysis.Analyze("")})
	require.NoError(t, writeResults(&buf, formatJSON, two))
	var many []types.AnalysisResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &many))
	assert.Len(t, many, 2)
}

func TestWriteResults_Text(t *testing.T) {
	results := []types.AnalysisResponse{{Source: "resume.pdf", Report: analysis.Analyze(analysis.SampleResume)}}

	var buf bytes.Buffer
	require.NoError(t, writeResults(&buf, formatText, results))
	assert.Contains(t, buf.String(), "ATS SCORE REPORT")
	assert.Contains(t, buf.String(), "resume.pdf")
}

func TestAnalyzeCommand_Sample(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze", "--sample", "--format", "json")
	output, err := cmd.Output()
	require.NoError(t, err)

	var result types.AnalysisResponse
	require.NoError(t, json.Unmarshal(output, &result))
	assert.Equal(t, analysis.Analyze(analysis.SampleResume).OverallScore, result.Report.OverallScore)
}

func TestAnalyzeCommand_NoInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "nothing to analyze")
}
