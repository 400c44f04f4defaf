package client

import (
	"encoding/json"
	"fmt"
	"io"
)

// Formatter formats results for output.
type Formatter interface {
	FormatUpload(w io.Writer, result *UploadResult) error
	FormatStatus(w io.Writer, result *StatusResult) error
	FormatFetch(w io.Writer, result *FetchResult) error
	FormatError(w io.Writer, err error) error
	FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error
	FormatProfileShow(w io.Writer, profile Profile, isDefault bool) error
}

// NewFormatter returns the appropriate formatter based on flags.
func NewFormatter(jsonOutput, quiet bool) Formatter {
	if jsonOutput {
		return &JSONFormatter{}
	}
	return &HumanFormatter{Quiet: quiet}
}

// HumanFormatter outputs human-readable text.
type HumanFormatter struct {
	Quiet bool
}

// FormatUpload formats an upload result as human-readable text.
func (f *HumanFormatter) FormatUpload(w io.Writer, result *UploadResult) error {
	if f.Quiet {
		return nil
	}
	verb := "Uploaded"
	if result.Replaced {
		verb = "Replaced"
	}
	_, _ = fmt.Fprintf(w, "%s: %s -> %s (%s)\n", verb, result.LocalPath, result.Filename, formatSize(result.SizeBytes))
	if result.Preview != "" {
		_, _ = fmt.Fprintf(w, "  Preview: %s\n", result.Preview)
	}
	return nil
}

// FormatStatus formats a status result as human-readable text.
func (f *HumanFormatter) FormatStatus(w io.Writer, result *StatusResult) error {
	if !result.Exists {
		_, _ = fmt.Fprintln(w, "Slot is empty")
		return nil
	}

	_, _ = fmt.Fprintf(w, "Slot is occupied: %s", result.Name)
	if result.SizeBytes != nil {
		_, _ = fmt.Fprintf(w, " (%s)", formatSize(*result.SizeBytes))
	}
	_, _ = fmt.Fprintln(w)

	if !f.Quiet {
		if result.LastModified != nil {
			_, _ = fmt.Fprintf(w, "  Last modified: %s\n", result.LastModified.Format("2006-01-02 15:04:05"))
		}
		if result.URL != "" {
			_, _ = fmt.Fprintf(w, "  URL: %s\n", result.URL)
		}
	}
	return nil
}

// FormatFetch formats a fetch result as human-readable text.
// The content itself goes to w verbatim; metadata is suppressed so the
// output can be piped.
func (f *HumanFormatter) FormatFetch(w io.Writer, result *FetchResult) error {
	_, err := io.WriteString(w, result.Content)
	return err
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// FormatProfileList formats the profile list as human-readable text.
func (f *HumanFormatter) FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error {
	for i := range profiles {
		p := &profiles[i]
		marker := " "
		if p.Name == defaultName {
			marker = "*"
		}
		_, _ = fmt.Fprintf(w, "%s %-20s %s\n", marker, p.Name, p.Endpoint)
	}
	return nil
}

// FormatProfileShow formats a single profile as human-readable text.
func (f *HumanFormatter) FormatProfileShow(w io.Writer, profile Profile, isDefault bool) error {
	_, _ = fmt.Fprintf(w, "Name:     %s\n", profile.Name)
	_, _ = fmt.Fprintf(w, "Endpoint: %s\n", profile.Endpoint)
	_, _ = fmt.Fprintf(w, "Default:  %t\n", isDefault)
	return nil
}

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) FormatUpload(w io.Writer, result *UploadResult) error {
	return writeJSON(w, result)
}

func (f *JSONFormatter) FormatStatus(w io.Writer, result *StatusResult) error {
	return writeJSON(w, result)
}

func (f *JSONFormatter) FormatFetch(w io.Writer, result *FetchResult) error {
	return writeJSON(w, result)
}

func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	return writeJSON(w, map[string]string{"error": err.Error()})
}

func (f *JSONFormatter) FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error {
	type jsonProfile struct {
		Name     string `json:"name"`
		Endpoint string `json:"endpoint"`
		Default  bool   `json:"default"`
	}
	output := make([]jsonProfile, len(profiles))
	for i := range profiles {
		output[i] = jsonProfile{
			Name:     profiles[i].Name,
			Endpoint: profiles[i].Endpoint,
			Default:  profiles[i].Name == defaultName,
		}
	}
	return writeJSON(w, output)
}

func (f *JSONFormatter) FormatProfileShow(w io.Writer, profile Profile, isDefault bool) error {
	return writeJSON(w, map[string]any{
		"name":     profile.Name,
		"endpoint": profile.Endpoint,
		"default":  isDefault,
	})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatSize renders a byte count with a binary unit suffix.
func formatSize(size int64) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
	)
	switch {
	case size >= mib:
		return fmt.Sprintf("%.2f MiB", float64(size)/mib)
	case size >= kib:
		return fmt.Sprintf("%.2f KiB", float64(size)/kib)
	default:
		return fmt.Sprintf("%d B", size)
	}
}
