package analysis

import _ "embed"

// SampleResume is a realistic engineer resume used for demos and as a
// reference input for the scorer.
//
//go:embed sample_resume.txt
var SampleResume string
