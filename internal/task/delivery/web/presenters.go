package web

import (
	"html/template"
	"strings"

	"task-list-manager/internal/board"
	"task-list-manager/internal/model"
)

var templateFuncs = template.FuncMap{
	"title": func(f model.Filter) string {
		s := string(f)
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

type filterLink struct {
	Filter model.Filter
	Count  int
	Active bool
}

type pageData struct {
	View          board.View
	Filters       []filterLink
	LabelCancel   string
	LabelNoTasks  string
	ConfirmPrompt string
}

func newPageData(v board.View) pageData {
	links := make([]filterLink, len(model.Filters))
	for i, f := range model.Filters {
		links[i] = filterLink{
			Filter: f,
			Count:  v.List.Counts[f],
			Active: f == v.State.Filter,
		}
	}
	return pageData{
		View:          v,
		Filters:       links,
		LabelCancel:   board.LabelCancel,
		LabelNoTasks:  board.LabelNoTasks,
		ConfirmPrompt: board.LabelConfirmDelete,
	}
}
