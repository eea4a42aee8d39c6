package controller

import (
	"net/http"
	"strings"
	"testing"

	"ai-attendant-widget/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gabrieleID = "asst_epSsBL4xTTSse7v2yqk9E4IA"

func TestCatalogRoutes(t *testing.T) {
	a := newTestApp(t)

	code, body := a.call(t, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, code)
	catalog := decode[dto.CatalogResponse](t, body.Data)
	assert.Equal(t, "ready", catalog.Status)
	assert.Len(t, catalog.Models, 4)

	code, body = a.call(t, http.MethodPost, "/api/catalog/custom", dto.CreateCustomAIRequest{Niche: "   "})
	require.Equal(t, http.StatusOK, code)
	assert.False(t, decode[dto.CreateCustomAIResponse](t, body.Data).Accepted)

	code, body = a.call(t, http.MethodPost, "/api/catalog/custom", dto.CreateCustomAIRequest{Niche: strings.Repeat("x", 121)})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Success)

	code, body = a.call(t, http.MethodPost, "/api/catalog/custom", dto.CreateCustomAIRequest{Niche: "Pet Shop"})
	require.Equal(t, http.StatusOK, code)
	created := decode[dto.CreateCustomAIResponse](t, body.Data)
	assert.True(t, created.Accepted)
	require.NotNil(t, created.Model)
	assert.Equal(t, "custom-1", created.Model.ID)

	_, body = a.call(t, http.MethodGet, "/api/catalog", nil)
	assert.Len(t, decode[dto.CatalogResponse](t, body.Data).Models, 5)
}

func TestChatConversationFlow(t *testing.T) {
	a := newTestApp(t)

	code, body := a.call(t, http.MethodPost, "/api/chat/conversations", dto.StartConversationRequest{AIID: gabrieleID})
	require.Equal(t, http.StatusOK, code)
	started := decode[dto.StartConversationResponse](t, body.Data)
	require.True(t, started.Accepted)
	require.True(t, started.Created)
	id := started.Conversation.Id

	code, _ = a.call(t, http.MethodPut, "/api/chat/conversations/"+id+"/draft", dto.SetDraftRequest{Text: "Quero agendar"})
	require.Equal(t, http.StatusOK, code)

	code, body = a.call(t, http.MethodPost, "/api/chat/conversations/"+id+"/send", nil)
	require.Equal(t, http.StatusOK, code)
	sent := decode[dto.SendMessageResponse](t, body.Data)
	require.True(t, sent.Accepted)
	assert.Equal(t, "Quero agendar", sent.Message.Content)

	a.ctrl.Wait()

	_, body = a.call(t, http.MethodGet, "/api/chat/state", nil)
	state := decode[dto.WidgetStateResponse](t, body.Data)
	require.Len(t, state.ActiveConversations, 1)
	msgs := state.ActiveConversations[0].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, "Claro!", msgs[2].Content)
	assert.Equal(t, "", state.ActiveConversations[0].Draft)

	code, body = a.call(t, http.MethodDelete, "/api/chat/conversations/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[dto.CloseConversationResponse](t, body.Data).Archived)

	code, body = a.call(t, http.MethodPost, "/api/chat/history/"+id+"/restore", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, decode[dto.ConversationDTO](t, body.Data).Id)
}

func TestChatRejectsBadInput(t *testing.T) {
	a := newTestApp(t)

	code, body := a.call(t, http.MethodPost, "/api/chat/history/missing/restore", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, body.Success)

	code, _ = a.call(t, http.MethodPut, "/api/chat/history/open", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = a.call(t, http.MethodPost, "/api/chat/conversations", dto.StartConversationRequest{})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = a.call(t, http.MethodPost, "/api/chat/conversations", dto.StartConversationRequest{AIID: "asst_missing"})
	require.Equal(t, http.StatusOK, code)
	assert.False(t, decode[dto.StartConversationResponse](t, body.Data).Accepted)

	open := true
	code, _ = a.call(t, http.MethodPut, "/api/chat/history/open", dto.SetFlagRequest{Value: &open})
	require.Equal(t, http.StatusOK, code)
	_, body = a.call(t, http.MethodGet, "/api/chat/state", nil)
	assert.True(t, decode[dto.WidgetStateResponse](t, body.Data).IsHistoryOpen)
}

func TestPhoneRoutes(t *testing.T) {
	a := newTestApp(t)

	code, _ := a.call(t, http.MethodPut, "/api/phone/ai", dto.SelectPhoneAIRequest{AIID: "asst_missing"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = a.call(t, http.MethodPut, "/api/phone/ai", dto.SelectPhoneAIRequest{AIID: gabrieleID})
	require.Equal(t, http.StatusOK, code)

	code, body := a.call(t, http.MethodPut, "/api/phone/number", dto.SetPhoneRequest{Phone: "11999998888"})
	require.Equal(t, http.StatusOK, code)
	state := decode[dto.PhoneStateResponse](t, body.Data)
	assert.Equal(t, "(11) 99999-8888", state.Phone)
	assert.True(t, state.CanExecute)

	code, body = a.call(t, http.MethodPost, "/api/phone/execute", nil)
	require.Equal(t, http.StatusOK, code)
	exec := decode[dto.ExecutePhoneResponse](t, body.Data)
	assert.True(t, exec.Accepted)
	assert.Equal(t, 300, exec.State.CooldownRemaining)

	_, body = a.call(t, http.MethodPut, "/api/phone/number", dto.SetPhoneRequest{Phone: "21988887777"})
	assert.Equal(t, "Phone form is locked", body.Message)
}

func TestLeadRoutes(t *testing.T) {
	a := newTestApp(t)

	_, body := a.call(t, http.MethodGet, "/api/lead", nil)
	assert.Nil(t, decode[dto.LeadResponse](t, body.Data).LeadId)

	code, _ := a.call(t, http.MethodPut, "/api/lead", dto.SetLeadRequest{LeadId: -4})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = a.call(t, http.MethodPut, "/api/lead", dto.SetLeadRequest{LeadId: 42})
	require.Equal(t, http.StatusOK, code)
	lead := decode[dto.LeadResponse](t, body.Data)
	require.NotNil(t, lead.LeadId)
	assert.Equal(t, int64(42), *lead.LeadId)

	_, body = a.call(t, http.MethodDelete, "/api/lead", nil)
	assert.Nil(t, decode[dto.LeadResponse](t, body.Data).LeadId)
}
