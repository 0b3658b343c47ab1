package launcher_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seek/internal/adapters/launcher"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		reveal   bool
		wantName string
		wantArgs []string
	}{
		{name: "darwin open", goos: "darwin", wantName: "open", wantArgs: []string{"/Applications/Safari.app"}},
		{name: "darwin reveal", goos: "darwin", reveal: true, wantName: "open", wantArgs: []string{"-R", "/Applications/Safari.app"}},
		{name: "linux open", goos: "linux", wantName: "xdg-open", wantArgs: []string{"/Applications/Safari.app"}},
		{name: "linux reveal", goos: "linux", reveal: true, wantName: "xdg-open", wantArgs: []string{"/Applications"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := launcher.NewForOS(nil, tt.goos)
			name, args := l.Command("/Applications/Safari.app", tt.reveal)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCommand_Opener(t *testing.T) {
	l := launcher.NewForOS(nil, "darwin").WithOpener("/usr/local/bin/opener")
	name, args := l.Command("/Applications/Safari.app", true)
	assert.Equal(t, "/usr/local/bin/opener", name)
	assert.Equal(t, []string{"-R", "/Applications/Safari.app"}, args)
}

// stubOpener writes a script that records its arguments and exits with code.
func stubOpener(t *testing.T, code int) (script, record string) {
	t.Helper()
	dir := t.TempDir()
	record = filepath.Join(dir, "args")
	script = filepath.Join(dir, "opener")
	body := "#!/bin/sh\necho \"$@\" > '" + record + "'\necho launched\necho warning >&2\nexit " + strconv.Itoa(code) + "\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0o700)) //nolint:gosec // test script must be executable
	return script, record
}

func TestLaunch(t *testing.T) {
	script, record := stubOpener(t, 0)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("launching", gomock.Any()).Times(1)
	log.EXPECT().Debug("launched").Times(1)
	log.EXPECT().Warn("warning").Times(1)

	l := launcher.NewForOS(log, "darwin").WithOpener(script)
	require.NoError(t, l.Launch(t.Context(), "/Applications/Safari.app", true))

	data, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, "-R /Applications/Safari.app\n", string(data))
}

func TestLaunch_Failure(t *testing.T) {
	script, _ := stubOpener(t, 3)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	l := launcher.NewForOS(log, "linux").WithOpener(script)
	err := l.Launch(t.Context(), "/Applications/Safari.app", false)
	require.ErrorContains(t, err, domain.ErrLaunchFailed.Error())
}

func TestLaunch_EmptyID(t *testing.T) {
	l := launcher.NewForOS(nil, "linux")
	err := l.Launch(t.Context(), "  ", false)
	require.ErrorContains(t, err, domain.ErrEmptyID.Error())
}

func TestLaunch_MissingOpener(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	l := launcher.NewForOS(log, "linux").WithOpener(filepath.Join(t.TempDir(), "absent"))
	err := l.Launch(t.Context(), "/Applications/Safari.app", false)
	require.ErrorContains(t, err, domain.ErrLaunchFailed.Error())
}
