// Package prefs owns the chart preferences (guides and trend toggles).
//
// Changes are persisted through the domain.PrefsStore and pushed to every
// subscriber, so an import that carries preferences updates any open view.
package prefs
