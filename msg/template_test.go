package msg

import (
	"encoding/json"
	"testing"

	"github.com/gotid/wechat-mp/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateMessageOmitsOptionalFields(t *testing.T) {
	m := NewTemplateMessage("openid", "tid", Values(map[string]string{"first": "您好"}))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"touser":"openid","template_id":"tid","data":{"first":{"value":"您好"}}}`, string(data))
}

func TestTemplateMessageOptionalFields(t *testing.T) {
	m := NewTemplateMessage("openid", "tid", map[string]TemplateData{
		"keyword1": {Value: "123", Color: "#173177"},
	})
	m.URL = "https://example.com/order/1"
	m.MiniProgram = &MiniProgram{AppID: "wxapp", PagePath: "pages/index"}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"touser":"openid",
		"template_id":"tid",
		"data":{"keyword1":{"value":"123","color":"#173177"}},
		"url":"https://example.com/order/1",
		"miniprogram":{"appid":"wxapp","pagepath":"pages/index"}
	}`, string(data))
}

func TestTemplateMessageValidate(t *testing.T) {
	var nilMsg *TemplateMessage
	assert.ErrorIs(t, nilMsg.Validate(), util.ErrMissingParam)
	assert.ErrorIs(t, NewTemplateMessage(" ", "tid", nil).Validate(), util.ErrMissingParam)
	assert.ErrorIs(t, NewTemplateMessage("openid", "", nil).Validate(), util.ErrMissingParam)

	m := NewTemplateMessage("openid", "tid", nil)
	m.MiniProgram = &MiniProgram{}
	assert.ErrorIs(t, m.Validate(), util.ErrMissingParam)

	assert.NoError(t, NewTemplateMessage("openid", "tid", nil).Validate())
}
