package taskbar

import "strings"

// verbPair holds the localized context-menu captions for one locale. The
// table is deliberately finite: matching against an enumerable set keeps
// the last-resort verb strategies testable, unlike free-form heuristics.
type verbPair struct {
	locale string
	pin    string
	unpin  string
}

var verbTable = []verbPair{
	{"en-US", "pin to taskbar", "unpin from taskbar"},
	{"de-DE", "an taskleiste anheften", "von taskleiste lösen"},
	{"es-ES", "anclar a la barra de tareas", "desanclar de la barra de tareas"},
	{"fr-FR", "épingler à la barre des tâches", "détacher de la barre des tâches"},
	{"it-IT", "aggiungi alla barra delle applicazioni", "rimuovi dalla barra delle applicazioni"},
	{"pt-BR", "fixar na barra de tarefas", "desafixar da barra de tarefas"},
	{"nl-NL", "aan taakbalk vastmaken", "van taakbalk losmaken"},
	{"ru-RU", "закрепить на панели задач", "открепить от панели задач"},
	{"ja-JP", "タスク バーにピン留めする", "タスク バーからピン留めを外す"},
	{"zh-CN", "固定到任务栏", "从任务栏取消固定"},
}

// normalizeCaption strips the '&' accelerator markers shell verbs carry and
// folds case for comparison.
func normalizeCaption(caption string) string {
	return strings.ToLower(strings.ReplaceAll(caption, "&", ""))
}

// MatchPinVerb reports whether a context-menu caption is a localized
// "pin to taskbar" verb, returning the matched locale.
func MatchPinVerb(caption string) (string, bool) {
	normalized := normalizeCaption(caption)
	for _, pair := range verbTable {
		if strings.Contains(normalized, pair.pin) {
			return pair.locale, true
		}
	}
	return "", false
}

// MatchUnpinVerb reports whether a caption is a localized "unpin from
// taskbar" verb, returning the matched locale.
func MatchUnpinVerb(caption string) (string, bool) {
	normalized := normalizeCaption(caption)
	for _, pair := range verbTable {
		if strings.Contains(normalized, pair.unpin) {
			return pair.locale, true
		}
	}
	return "", false
}

// pinVerbCaptions returns every localized pin caption, for inlining into
// the helper script that scans an item's verbs.
func pinVerbCaptions() []string {
	captions := make([]string, len(verbTable))
	for i, pair := range verbTable {
		captions[i] = pair.pin
	}
	return captions
}

func unpinVerbCaptions() []string {
	captions := make([]string, len(verbTable))
	for i, pair := range verbTable {
		captions[i] = pair.unpin
	}
	return captions
}
