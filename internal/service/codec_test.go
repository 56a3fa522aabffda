package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestCodec(t *testing.T) {
	var c Codec
	assert.Equal(t, "json", c.Name())

	data, err := c.Marshal(&CreateBillRequest{UserID: 1, ProviderID: 2, Amount: decimal.RequireFromString("42.50")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_id":1,"provider_id":2,"amount":"42.5"}`, string(data))

	var req CreateBillRequest
	require.NoError(t, c.Unmarshal([]byte(`{"user_id":3,"provider_id":4,"amount":12.25}`), &req))
	assert.Equal(t, 3, req.UserID)
	assert.True(t, decimal.RequireFromString("12.25").Equal(req.Amount))

	data, err = c.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
	require.NoError(t, c.Unmarshal([]byte(`{}`), &emptypb.Empty{}))
}
