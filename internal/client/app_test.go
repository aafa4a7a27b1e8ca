// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/mock"
	"github.com/MKhiriev/go-property-analyzer/internal/service"
	"github.com/MKhiriev/go-property-analyzer/internal/tui"
	"github.com/MKhiriev/go-property-analyzer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// scriptedUI replays prepared results for each flow call.
type scriptedUI struct {
	logins   []error
	logouts  []bool
	mainErr  error
	loginN   int
	mainN    int
	lastSeen models.UsageSummary
}

func (s *scriptedUI) LoginFlow(context.Context) (models.UsageSummary, error) {
	err := s.logins[s.loginN]
	s.loginN++
	return models.UsageSummary{Username: "alice", Remaining: s.loginN}, err
}

func (s *scriptedUI) MainLoop(_ context.Context, usage models.UsageSummary) (bool, error) {
	s.lastSeen = usage
	if s.mainErr != nil {
		return false, s.mainErr
	}
	logout := s.logouts[s.mainN]
	s.mainN++
	return logout, nil
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockClientService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockClientService(ctrl)
	client.EXPECT().ServerVersion(gomock.Any()).Return("1.0.0", nil).AnyTimes()

	app, err := NewApp(&service.ClientServices{ClientService: client}, ui, logger.Nop())
	require.NoError(t, err)
	return app.(*App), client
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &scriptedUI{}, logger.Nop())
	assert.ErrorIs(t, err, errNoClientServices)

	ctrl := gomock.NewController(t)
	services := &service.ClientServices{ClientService: mock.NewMockClientService(ctrl)}
	_, err = NewApp(services, nil, logger.Nop())
	assert.ErrorIs(t, err, errNoUI)
}

func TestApp_QuitFromLogin(t *testing.T) {
	ui := &scriptedUI{logins: []error{tui.ErrUserQuit}}
	app, _ := newTestApp(t, ui)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, 0, ui.mainN)
}

func TestApp_QuitFromMainLoopEndsSession(t *testing.T) {
	ui := &scriptedUI{logins: []error{nil}, logouts: []bool{false}}
	app, client := newTestApp(t, ui)
	client.EXPECT().Logout()

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, "alice", ui.lastSeen.Username)
}

func TestApp_LogoutReturnsToLogin(t *testing.T) {
	ui := &scriptedUI{logins: []error{nil, tui.ErrUserQuit}, logouts: []bool{true}}
	app, _ := newTestApp(t, ui)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, 2, ui.loginN)
	assert.Equal(t, 1, ui.mainN)
}

func TestApp_PropagatesUIErrors(t *testing.T) {
	boom := errors.New("terminal gone")

	t.Run("login flow", func(t *testing.T) {
		app, _ := newTestApp(t, &scriptedUI{logins: []error{boom}})
		assert.ErrorIs(t, app.run(context.Background()), boom)
	})

	t.Run("main loop", func(t *testing.T) {
		app, _ := newTestApp(t, &scriptedUI{logins: []error{nil}, mainErr: boom})
		assert.ErrorIs(t, app.run(context.Background()), boom)
	})
}

func TestApp_ServerVersionFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClientService(ctrl)
	client.EXPECT().ServerVersion(gomock.Any()).Return("", service.ErrServiceUnavailable)

	a, err := NewApp(&service.ClientServices{ClientService: client}, &scriptedUI{logins: []error{tui.ErrUserQuit}}, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, a.(*App).run(context.Background()))
}
