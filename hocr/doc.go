// Package hocr reads hOCR documents (the HTML-based output format of OCR
// engines such as Tesseract) and turns each page's line-level elements
// into positioned text blocks for analysis.
//
// Only positions and text are read; this package never runs OCR itself.
// Non-UTF-8 documents declaring a Latin-1 charset are decoded before
// parsing.
//
// Basic usage:
//
//	doc, err := hocr.Parse(data)
//	if err != nil {
//	    // handle error
//	}
//	for _, page := range doc.Pages {
//	    det, _ := tables.NewDetector().Detect(page.Blocks)
//	    // ...
//	}
package hocr
