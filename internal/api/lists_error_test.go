package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/sinkhole/internal/domain/lists"
	"github.com/bnema/sinkhole/internal/domain/repository/mocks"
)

// Storage failures must surface as database_error responses, never as an
// empty success.
func TestListEndpoints_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockListRepository(ctrl)

	h := newHarness(t)
	h.repo = repo

	repo.EXPECT().
		GetAll(gomock.Any(), lists.ListAllow).
		Return(nil, lists.ErrStorage)

	rec := h.request(t, http.MethodGet, "/api/lists/allow", "", false)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope struct {
		Error struct {
			Key string `json:"key"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "database_error", envelope.Error.Key)
}

func TestListEndpoints_AddStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockListRepository(ctrl)

	h := newHarness(t)
	h.repo = repo

	repo.EXPECT().
		Add(gomock.Any(), lists.ListDeny, "ads.example").
		Return(lists.ErrStorage)

	rec := h.request(t, http.MethodPost, "/api/lists/deny", `{"domain":"ads.example"}`, true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
