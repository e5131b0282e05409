package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/outgunned-bot/internal/dice"
	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
	"github.com/KirkDiggler/outgunned-bot/internal/repositories/channels"
	mockchannels "github.com/KirkDiggler/outgunned-bot/internal/repositories/channels/mock"
	"github.com/KirkDiggler/outgunned-bot/internal/services/settings"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mockchannels.MockRepository
	catalog *dice.Catalog
	service settings.Service
	ctx     context.Context
}

func (s *SettingsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mockchannels.NewMockRepository(s.ctrl)
	s.catalog = dice.BuiltinCatalog()
	s.ctx = context.Background()

	svc, err := settings.NewService(&settings.ServiceConfig{
		Repository: s.repo,
		Catalog:    s.catalog,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *SettingsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}

func (s *SettingsServiceTestSuite) TestGetDiceSet_Configured() {
	s.repo.EXPECT().GetDiceSet(s.ctx, "100").Return("pips", nil)

	set, err := s.service.GetDiceSet(s.ctx, "100")
	s.Require().NoError(err)
	s.Equal("pips", set.String())
}

func (s *SettingsServiceTestSuite) TestGetDiceSet_UnsetUsesDefault() {
	s.repo.EXPECT().GetDiceSet(s.ctx, "100").Return("", boterr.NotFound("no dice set"))

	set, err := s.service.GetDiceSet(s.ctx, "100")
	s.Require().NoError(err)
	s.Equal(s.catalog.Default(), set)
}

func (s *SettingsServiceTestSuite) TestGetDiceSet_StaleNameUsesDefault() {
	s.repo.EXPECT().GetDiceSet(s.ctx, "100").Return("retired", nil)

	set, err := s.service.GetDiceSet(s.ctx, "100")
	s.Require().NoError(err)
	s.Equal("basic", set.String())
}

func (s *SettingsServiceTestSuite) TestGetDiceSet_RepositoryError() {
	s.repo.EXPECT().GetDiceSet(s.ctx, "100").Return("", errors.New("connection reset"))

	_, err := s.service.GetDiceSet(s.ctx, "100")
	s.Require().Error(err)
	s.Contains(err.Error(), "connection reset")
}

func (s *SettingsServiceTestSuite) TestGetDiceSet_NoChannel() {
	// DMs have no channel configuration
	set, err := s.service.GetDiceSet(s.ctx, "")
	s.Require().NoError(err)
	s.Equal("basic", set.String())
}

func (s *SettingsServiceTestSuite) TestSetDiceSet() {
	emoji, err := s.catalog.Parse("emoji")
	s.Require().NoError(err)

	s.repo.EXPECT().SetDiceSet(s.ctx, "100", "emoji").Return(nil)

	s.NoError(s.service.SetDiceSet(s.ctx, "100", emoji))
}

func (s *SettingsServiceTestSuite) TestSetDiceSet_RejectsForeignSet() {
	other, err := dice.LoadCatalog([]byte(`
sets:
  - name: runes
    faces: ["ᚠ", "ᚢ", "ᚦ", "ᚨ", "ᚱ", "ᚲ"]
`))
	s.Require().NoError(err)

	err = s.service.SetDiceSet(s.ctx, "100", other.Default())
	s.True(boterr.IsInvalidArgument(err))
}

func (s *SettingsServiceTestSuite) TestSetDiceSet_RepositoryError() {
	s.repo.EXPECT().SetDiceSet(s.ctx, "100", "basic").Return(errors.New("READONLY"))

	s.Error(s.service.SetDiceSet(s.ctx, "100", s.catalog.Default()))
}

func (s *SettingsServiceTestSuite) TestList() {
	s.repo.EXPECT().List(s.ctx).Return(map[string]string{"100": "pips"}, nil)

	all, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[string]string{"100": "pips"}, all)
}

func TestNewService_Validation(t *testing.T) {
	_, err := settings.NewService(nil)
	assert.Error(t, err)

	_, err = settings.NewService(&settings.ServiceConfig{})
	assert.Error(t, err)

	svc, err := settings.NewService(&settings.ServiceConfig{Repository: channels.NewInMemoryRepository()})
	require.NoError(t, err)
	assert.Equal(t, "basic", svc.Catalog().Default().String())
}

func TestService_WithInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	svc, err := settings.NewService(&settings.ServiceConfig{Repository: channels.NewInMemoryRepository()})
	require.NoError(t, err)

	pips, err := svc.Catalog().Parse("pips")
	require.NoError(t, err)
	require.NoError(t, svc.SetDiceSet(ctx, "100", pips))

	got, err := svc.GetDiceSet(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, "pips", got.String())

	other, err := svc.GetDiceSet(ctx, "200")
	require.NoError(t, err)
	assert.Equal(t, "basic", other.String())
}
