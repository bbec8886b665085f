package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/giannis84/subway-favorites/internal/database"
	"github.com/giannis84/subway-favorites/internal/github"
	"github.com/giannis84/subway-favorites/internal/mock"
	"github.com/giannis84/subway-favorites/internal/models"
)

func TestLoginWithGitHub(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockIdentityProvider(ctrl)
	issuer := mock.NewMockTokenIssuer(ctrl)
	members := database.NewMockRepository(nil, nil)

	gomock.InOrder(
		provider.EXPECT().ExchangeCode(gomock.Any(), "code-1").Return("gh-token", nil),
		provider.EXPECT().Profile(gomock.Any(), "gh-token").Return(&github.Profile{Email: "a@example.com", Age: 20}, nil),
		issuer.EXPECT().IssueToken("1", "a@example.com").Return("jwt-1", nil),
	)

	token, err := NewLogin(provider, members, issuer).LoginWithGitHub(context.Background(), " code-1 ")
	require.NoError(t, err)
	assert.Equal(t, "jwt-1", token)
}

func TestLoginWithGitHub_ReusesMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockIdentityProvider(ctrl)
	issuer := mock.NewMockTokenIssuer(ctrl)
	members := mock.NewMockMembersRepository(ctrl)

	provider.EXPECT().ExchangeCode(gomock.Any(), gomock.Any()).Return("gh-token", nil).Times(2)
	provider.EXPECT().Profile(gomock.Any(), "gh-token").Return(&github.Profile{Email: "b@example.com", Age: 31}, nil).Times(2)
	members.EXPECT().FindOrCreateMemberInDB(gomock.Any(), "b@example.com", 31).
		Return(&models.Member{ID: 8, Email: "b@example.com", Age: 31}, nil).Times(2)
	issuer.EXPECT().IssueToken("8", "b@example.com").Return("jwt", nil).Times(2)

	login := NewLogin(provider, members, issuer)
	for range 2 {
		_, err := login.LoginWithGitHub(context.Background(), "code")
		require.NoError(t, err)
	}
}

func TestLoginWithGitHub_Errors(t *testing.T) {
	upstream := errors.New("connection refused")
	tests := []struct {
		name        string
		code        string
		exchangeErr error
		profileErr  error
		wantKind    Kind
		wantIs      error
	}{
		{name: "blank code", code: "  ", wantKind: KindMissingField},
		{name: "rejected code", code: "bad", exchangeErr: github.ErrInvalidCode, wantKind: KindUnauthenticated},
		{name: "rejected token", code: "ok", profileErr: github.ErrInvalidToken, wantKind: KindUnauthenticated},
		{name: "provider unreachable", code: "ok", exchangeErr: upstream, wantKind: KindUnknown, wantIs: upstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mock.NewMockIdentityProvider(ctrl)
			issuer := mock.NewMockTokenIssuer(ctrl)

			if tt.wantKind != KindMissingField {
				provider.EXPECT().ExchangeCode(gomock.Any(), tt.code).Return("gh-token", tt.exchangeErr)
				if tt.exchangeErr == nil {
					provider.EXPECT().Profile(gomock.Any(), "gh-token").Return(nil, tt.profileErr)
				}
			}

			_, err := NewLogin(provider, database.NewMockRepository(nil, nil), issuer).LoginWithGitHub(context.Background(), tt.code)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}
