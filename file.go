package dyn

import "os"

// ParseJSONFile reads path and parses it as JSON. Reading the whole file
// into memory is the only I/O this module performs; there is no
// incremental/streaming mode.
func ParseJSONFile(path string) (Value, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return None, newIoError("reading "+path, err)
	}
	return ParseJSON(b)
}

// ParseCSVHeadedFile reads path and parses it as headed CSV.
func ParseCSVHeadedFile(path string, opts ...CSVOption) (Value, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return None, newIoError("reading "+path, err)
	}
	return ParseCSVHeaded(b, opts...)
}

// ParseCSVHeadlessFile reads path and parses it as headless CSV.
func ParseCSVHeadlessFile(path string, opts ...CSVOption) (Value, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return None, newIoError("reading "+path, err)
	}
	return ParseCSVHeadless(b, opts...)
}
