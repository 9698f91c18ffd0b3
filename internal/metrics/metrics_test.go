package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.QuizStarted()
	m.QuizStarted()
	m.QuizCompleted()
	m.QuizAbandoned()
	m.AnswerChecked(true)
	m.AnswerChecked(false)
	m.AnswerChecked(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.started))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.completed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.abandoned))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.answers.WithLabelValues("correct")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.answers.WithLabelValues("wrong")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.QuizStarted()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "conjugar_quizzes_started_total 1")
}
