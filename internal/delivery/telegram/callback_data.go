package telegram

import (
	"strings"
)

// Callback action constants.
const (
	actionVerb     = "verb"
	actionTense    = "tense"
	actionVosotros = "vosotros"
	actionQuiz     = "quiz"
	actionStats    = "stats"
)

// Verb sub-actions.
const (
	verbToggle = "t"
	verbAll    = "all"
	verbNone   = "none"
)

// Quiz sub-actions.
const (
	quizStart = "start"
	quizStop  = "stop"
)

// maxCallbackDataLen is Telegram's limit for callback_data in bytes.
const maxCallbackDataLen = 64

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or "".
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 || parts[0] == "" {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildVerbToggleCallback builds callback data for toggling one verb.
func buildVerbToggleCallback(verb string) string {
	return callbackData{
		Action: actionVerb,
		Params: []string{verbToggle, verb},
	}.encode()
}

func buildVerbAllCallback() string {
	return callbackData{Action: actionVerb, Params: []string{verbAll}}.encode()
}

func buildVerbNoneCallback() string {
	return callbackData{Action: actionVerb, Params: []string{verbNone}}.encode()
}

// buildTenseCallback builds callback data for toggling a tense.
func buildTenseCallback(tense string) string {
	return callbackData{
		Action: actionTense,
		Params: []string{tense},
	}.encode()
}

func buildVosotrosCallback() string {
	return actionVosotros
}

// buildQuizStartCallback builds callback data for starting a quiz session.
func buildQuizStartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart},
	}.encode()
}

func buildQuizStopCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStop},
	}.encode()
}

func buildStatsCallback() string {
	return actionStats
}
