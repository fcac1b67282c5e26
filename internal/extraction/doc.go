// Package extraction turns the free-form text returned by the OCR model into
// validated word entries.
//
// The model is asked for a bare JSON array but may wrap it in a fenced code
// block, surround it with prose, or emit something that is not JSON at all.
// Parse reports why a payload was rejected; Normalize swallows that and
// returns an empty slice, so a bad reply degrades to "no words found".
package extraction
