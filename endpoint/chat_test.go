package endpoint

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xwdgood/Virtual-GP/chat"
)

// openConsultation starts a session over HTTP and returns its ID.
func openConsultation(t *testing.T, env *testEnv) string {
	t.Helper()
	w := env.do(t, http.MethodPost, "/consultation", nil)
	resp, _ := assertSuccess(t, w)
	sess := resp.Data.(map[string]interface{})
	id, ok := sess["id"].(string)
	require.True(t, ok)
	return id
}

func TestOpenConsultationSeedsGreeting(t *testing.T) {
	env := setupEndpointTest(t)

	w := env.do(t, http.MethodPost, "/consultation", nil)

	resp, _ := assertSuccess(t, w)
	sess := resp.Data.(map[string]interface{})
	messages := sess["messages"].([]interface{})
	require.Len(t, messages, 1)

	greeting := messages[0].(map[string]interface{})
	assert.Equal(t, chat.Greeting, greeting["text"])
	assert.Equal(t, "assistant", greeting["sender"])
}

func TestSendMessageReturnsScriptedReply(t *testing.T) {
	env := setupEndpointTest(t)
	id := openConsultation(t, env)

	w := env.do(t, http.MethodPost, "/consultation/"+id+"/message",
		map[string]string{"text": "I have a headache"})

	resp, _ := assertSuccess(t, w)
	reply := resp.Data.(map[string]interface{})
	assert.Equal(t, chat.FixedReplies[0], reply["text"])
	assert.Equal(t, "assistant", reply["sender"])
}

func TestSendMessageTooFastGetsWaitWarning(t *testing.T) {
	env := setupEndpointTest(t)
	id := openConsultation(t, env)

	w := env.do(t, http.MethodPost, "/consultation/"+id+"/message",
		map[string]string{"text": "first"})
	assertSuccess(t, w)

	// Back-to-back requests land well inside the minimum send interval.
	w = env.do(t, http.MethodPost, "/consultation/"+id+"/message",
		map[string]string{"text": "second"})

	resp, _ := assertSuccess(t, w)
	reply := resp.Data.(map[string]interface{})
	assert.Equal(t, "Please wait a few seconds before sending another message.", reply["text"])
	assert.Equal(t, "assistant", reply["sender"])
}

func TestSendMessageRejectsEmptyText(t *testing.T) {
	env := setupEndpointTest(t)
	id := openConsultation(t, env)

	w := env.do(t, http.MethodPost, "/consultation/"+id+"/message",
		map[string]string{"text": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessageUnknownSession(t *testing.T) {
	env := setupEndpointTest(t)

	w := env.do(t, http.MethodPost, "/consultation/nope/message",
		map[string]string{"text": "hello"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEndConsultationReturnsMessagesAndDiscardsSession(t *testing.T) {
	env := setupEndpointTest(t)
	id := openConsultation(t, env)

	w := env.do(t, http.MethodPost, "/consultation/"+id+"/message",
		map[string]string{"text": "my head hurts"})
	assertSuccess(t, w)

	w = env.do(t, http.MethodPost, "/consultation/"+id+"/end", nil)
	_, data := assertSuccess(t, w)
	messages := data["messages"].([]interface{})
	// Greeting, the user message and the scripted reply.
	require.Len(t, messages, 3)
	assert.Equal(t, "my head hurts", messages[1].(map[string]interface{})["text"])

	w = env.do(t, http.MethodPost, "/consultation/"+id+"/end", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
