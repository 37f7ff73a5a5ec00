// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-launcher/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const maxValueWidth = 60

var fieldTitles = map[string]string{
	models.KeyBuildNumber:    "Build number",
	models.KeyBuildID:        "Build ID",
	models.KeyBuildTag:       "Build tag",
	models.KeyBuildURL:       "Build URL",
	models.KeyJobName:        "Job name",
	models.KeyGitBranch:      "Git branch",
	models.KeyGitCommit:      "Git commit",
	models.KeyDateTime:       "Date/time",
	models.KeyDisplayVersion: "Version",
}

// BuildInfoModel is the page showing every field of the version descriptor.
type BuildInfoModel struct {
	appName   string
	info      *models.VersionInfo
	clipboard Clipboard
}

// NewBuildInfoModel returns the build info page for info.
func NewBuildInfoModel(appName string, info *models.VersionInfo, clip Clipboard) *BuildInfoModel {
	return &BuildInfoModel{
		appName:   appName,
		info:      info,
		clipboard: clip,
	}
}

func (m *BuildInfoModel) Init() tea.Cmd {
	return nil
}

func (m *BuildInfoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc, keys.version):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.clipboard, m.info.String())
	}

	return m, nil
}

func (m *BuildInfoModel) View() string {
	return appStyle.Render(renderBuildInfoWindow(m.appName, m.info))
}

func renderBuildInfoWindow(appName string, info *models.VersionInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-14s %s\n", "Application:", appName)
	for _, f := range info.Fields() {
		title, ok := fieldTitles[f.Label]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%-14s %s\n", title+":", fitText(valueOrNA(f.Value), maxValueWidth))
	}

	if info.IsEmpty() {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("No build metadata packaged: this is a development build."))
	}

	return renderPage(titleStyle.Render("ABOUT"), strings.TrimRight(b.String(), "\n"), "esc: back │ c: copy")
}
