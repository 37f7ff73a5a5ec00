// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// Property keys recognised in a version info resource.
const (
	KeyBuildNumber    = "buildNumber"
	KeyBuildID        = "buildId"
	KeyBuildTag       = "buildTag"
	KeyBuildURL       = "buildUrl"
	KeyJobName        = "jobName"
	KeyGitBranch      = "gitBranch"
	KeyGitCommit      = "gitCommit"
	KeyDateTime       = "dateTime"
	KeyDisplayVersion = "displayVersion"

	keyIsEmpty = "isEmpty"
)

// PropertyKeys lists the recognised keys in summary order.
var PropertyKeys = []string{
	KeyBuildNumber,
	KeyBuildID,
	KeyBuildTag,
	KeyBuildURL,
	KeyJobName,
	KeyGitBranch,
	KeyGitCommit,
	KeyDateTime,
	KeyDisplayVersion,
}

// VersionInfo carries immutable build metadata of the launcher.
//
// Values come from a properties resource produced by the CI pipeline and
// are shown in CLI/TUI version output for diagnostics and release
// traceability. A VersionInfo whose source had no entries at all reports
// IsEmpty, which usually means the launcher runs from an unpackaged
// development build.
//
// Use [NewVersionInfo] to construct one; the zero value has no summary.
type VersionInfo struct {
	isEmpty        bool
	buildNumber    string
	buildID        string
	buildTag       string
	buildURL       string
	jobName        string
	gitBranch      string
	gitCommit      string
	dateTime       string
	displayVersion string

	summary string
}

// PropertyLookup resolves a property key to its value.
// The boolean reports whether the key was present.
type PropertyLookup func(key string) (string, bool)

// NewVersionInfo builds a [VersionInfo] from a property source holding
// count entries. Keys missing from lookup default to an empty string;
// keys outside [PropertyKeys] are never consulted.
func NewVersionInfo(count int, lookup PropertyLookup) *VersionInfo {
	get := func(key string) string {
		if lookup == nil {
			return ""
		}
		if v, ok := lookup(key); ok {
			return v
		}
		return ""
	}

	v := &VersionInfo{
		isEmpty:        count == 0,
		buildNumber:    get(KeyBuildNumber),
		buildID:        get(KeyBuildID),
		buildTag:       get(KeyBuildTag),
		buildURL:       get(KeyBuildURL),
		jobName:        get(KeyJobName),
		gitBranch:      get(KeyGitBranch),
		gitCommit:      get(KeyGitCommit),
		dateTime:       get(KeyDateTime),
		displayVersion: get(KeyDisplayVersion),
	}
	v.summary = v.buildSummary()

	return v
}

// NewVersionInfoFromMap is a convenience wrapper around [NewVersionInfo]
// for an in-memory property set.
func NewVersionInfoFromMap(props map[string]string) *VersionInfo {
	return NewVersionInfo(len(props), func(key string) (string, bool) {
		v, ok := props[key]
		return v, ok
	})
}

// EmptyVersionInfo returns the descriptor of a build without metadata.
func EmptyVersionInfo() *VersionInfo {
	return NewVersionInfo(0, nil)
}

func (v *VersionInfo) buildSummary() string {
	var b strings.Builder

	b.WriteString("[")
	for i, f := range v.Fields() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Label)
		b.WriteString("=")
		b.WriteString(f.Value)
	}
	b.WriteString("]")

	return b.String()
}

// Field is a single label/value pair of a [VersionInfo].
type Field struct {
	Label string
	Value string
}

// Fields returns all nine properties followed by isEmpty, in summary order.
func (v *VersionInfo) Fields() []Field {
	return []Field{
		{Label: KeyBuildNumber, Value: v.buildNumber},
		{Label: KeyBuildID, Value: v.buildID},
		{Label: KeyBuildTag, Value: v.buildTag},
		{Label: KeyBuildURL, Value: v.buildURL},
		{Label: KeyJobName, Value: v.jobName},
		{Label: KeyGitBranch, Value: v.gitBranch},
		{Label: KeyGitCommit, Value: v.gitCommit},
		{Label: KeyDateTime, Value: v.dateTime},
		{Label: KeyDisplayVersion, Value: v.displayVersion},
		{Label: keyIsEmpty, Value: strconv.FormatBool(v.isEmpty)},
	}
}

// IsEmpty reports whether the source property set had no entries.
func (v *VersionInfo) IsEmpty() bool {
	return v.isEmpty
}

// BuildNumber returns the CI build number.
func (v *VersionInfo) BuildNumber() string {
	return v.buildNumber
}

// BuildID returns the CI build identifier.
func (v *VersionInfo) BuildID() string {
	return v.buildID
}

// BuildTag returns the CI build tag.
func (v *VersionInfo) BuildTag() string {
	return v.buildTag
}

// BuildURL returns the URL of the CI build page.
func (v *VersionInfo) BuildURL() string {
	return v.buildURL
}

// JobName returns the CI job name.
func (v *VersionInfo) JobName() string {
	return v.jobName
}

// GitBranch returns the source-control branch of the build.
func (v *VersionInfo) GitBranch() string {
	return v.gitBranch
}

// GitCommit returns the source-control commit hash of the build.
func (v *VersionInfo) GitCommit() string {
	return v.gitCommit
}

// DateTime returns the build timestamp string.
func (v *VersionInfo) DateTime() string {
	return v.dateTime
}

// DisplayVersion returns the human-facing version string.
func (v *VersionInfo) DisplayVersion() string {
	return v.displayVersion
}

// String returns the summary computed at construction time.
func (v *VersionInfo) String() string {
	return v.summary
}

// VersionSnapshot is an exported copy of a [VersionInfo] for JSON and YAML
// output.
type VersionSnapshot struct {
	BuildNumber    string `json:"buildNumber" yaml:"buildNumber"`
	BuildID        string `json:"buildId" yaml:"buildId"`
	BuildTag       string `json:"buildTag" yaml:"buildTag"`
	BuildURL       string `json:"buildUrl" yaml:"buildUrl"`
	JobName        string `json:"jobName" yaml:"jobName"`
	GitBranch      string `json:"gitBranch" yaml:"gitBranch"`
	GitCommit      string `json:"gitCommit" yaml:"gitCommit"`
	DateTime       string `json:"dateTime" yaml:"dateTime"`
	DisplayVersion string `json:"displayVersion" yaml:"displayVersion"`
	IsEmpty        bool   `json:"isEmpty" yaml:"isEmpty"`
}

// Snapshot copies the descriptor into a [VersionSnapshot].
func (v *VersionInfo) Snapshot() VersionSnapshot {
	return VersionSnapshot{
		BuildNumber:    v.buildNumber,
		BuildID:        v.buildID,
		BuildTag:       v.buildTag,
		BuildURL:       v.buildURL,
		JobName:        v.jobName,
		GitBranch:      v.gitBranch,
		GitCommit:      v.gitCommit,
		DateTime:       v.dateTime,
		DisplayVersion: v.displayVersion,
		IsEmpty:        v.isEmpty,
	}
}
