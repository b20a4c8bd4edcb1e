package types

// LocationInfo is a point-in-time snapshot of one location: its record
// plus the observable display fields. Command results carry these, and
// the JSON and YAML output modes serialize them as-is.
type LocationInfo struct {
	Record `yaml:",inline"`

	// ShareLabel is the display name of the shortcut entry. Empty when
	// the entry does not exist on disk.
	ShareLabel string `json:"ShareLabel" yaml:"ShareLabel"`

	// IsReady reports whether the share's root directory currently
	// exists. Checked live, never cached.
	IsReady bool `json:"IsReady" yaml:"IsReady"`

	// IsMapped reports whether a shortcut entry for the location exists
	// in the network-shortcuts container.
	IsMapped bool `json:"IsMapped" yaml:"IsMapped"`
}

// ListResult is the outcome of enumerating the network-shortcuts
// container.
type ListResult struct {
	// ShortcutsDir is the container directory that was enumerated.
	ShortcutsDir string `json:"ShortcutsDir" yaml:"ShortcutsDir"`

	// Locations holds one snapshot per discovered location. Never nil;
	// empty when the container is empty or inaccessible.
	Locations []LocationInfo `json:"Locations" yaml:"Locations"`
}

// StatusRow is the outcome of checking a single requested path.
type StatusRow struct {
	// Path is the UNC path exactly as requested.
	Path string `json:"Path" yaml:"Path"`

	// Location is the snapshot for the parsed path, nil when parsing
	// failed.
	Location *LocationInfo `json:"Location,omitempty" yaml:"Location,omitempty"`

	// Error holds the parse failure message for bad input rows.
	Error string `json:"Error,omitempty" yaml:"Error,omitempty"`
}

// StatusResult is the outcome of checking one or more requested paths.
type StatusResult struct {
	Rows []StatusRow `json:"Rows" yaml:"Rows"`

	// Failed counts rows whose path could not be parsed.
	Failed int `json:"Failed" yaml:"Failed"`
}

// GenConfigResult is the outcome of generating configuration content.
type GenConfigResult struct {
	// Content is the generated TOML.
	Content string `json:"Content" yaml:"Content"`

	// Path is where the content was written, empty when only printed.
	Path string `json:"Path,omitempty" yaml:"Path,omitempty"`

	// Written reports whether a file was created.
	Written bool `json:"Written" yaml:"Written"`
}

// LabelResult is the outcome of reading or changing a location's label.
type LabelResult struct {
	// Path is the canonical root path of the location.
	Path string `json:"Path" yaml:"Path"`

	// OldLabel is the label before the operation.
	OldLabel string `json:"OldLabel" yaml:"OldLabel"`

	// NewLabel is the label after a rename, empty for a plain read.
	NewLabel string `json:"NewLabel,omitempty" yaml:"NewLabel,omitempty"`

	// Renamed reports whether the shortcut entry was renamed on disk.
	Renamed bool `json:"Renamed" yaml:"Renamed"`
}
