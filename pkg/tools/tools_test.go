package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreate_ExecutableNames(t *testing.T) {
	want := map[Name]string{
		NameBandit:    "bandit",
		NameFlake8:    "flake8",
		NamePylint:    "pylint",
		NamePyreCheck: "pyre",
	}
	f := NewFactory()
	for _, name := range f.GetAvailableTools() {
		tool, err := f.Create(name)
		require.NoError(t, err)
		assert.Equal(t, name, tool.Name())
		cmd := tool.BuildCommand("/tmp/proj", "")
		require.NotEmpty(t, cmd)
		assert.Equal(t, want[name], cmd[0], "executable for %s", name)
	}
}

func TestFactoryCreate_Unsupported(t *testing.T) {
	_, err := New("mypy")
	require.ErrorIs(t, err, ErrUnsupportedTool)
	assert.Contains(t, err.Error(), "bandit, flake8, pylint, pyre-check")
}

func TestParseName(t *testing.T) {
	n, err := ParseName("pyre-check")
	require.NoError(t, err)
	assert.Equal(t, NamePyreCheck, n)

	_, err = ParseName("pyre")
	assert.ErrorIs(t, err, ErrUnsupportedTool)
	_, err = ParseName("Bandit")
	assert.ErrorIs(t, err, ErrUnsupportedTool)
}

func TestBandit_BuildCommand(t *testing.T) {
	got := NewBandit().BuildCommand("/tmp/proj", "a, b ,c")
	assert.Equal(t, []string{
		"bandit", "-r", "/tmp/proj", "-f", "txt",
		"--exclude=a", "--exclude=b", "--exclude=c",
	}, got)

	assert.Equal(t, []string{"bandit", "-r", "src", "-f", "txt"}, NewBandit().BuildCommand("src", " , "))
}

func TestFlake8_BuildCommand(t *testing.T) {
	got := NewFlake8().BuildCommand("/tmp/proj", "tests,build")
	assert.Equal(t, []string{
		"flake8", "/tmp/proj",
		"--extend-ignore=E722,B001,B028",
		"--select=E,W,F,C90",
		"--max-complexity=10",
		"--exclude", "tests,build",
	}, got)

	got = NewFlake8().BuildCommand("/tmp/proj", "a, b ,c")
	assert.Equal(t, []string{"--exclude", "a,b,c"}, got[len(got)-2:])

	got = NewFlake8().BuildCommand("/tmp/proj", "")
	assert.NotContains(t, got, "--exclude")
}

func TestPylint_BuildCommand(t *testing.T) {
	got := NewPylint().BuildCommand("pkg", "a, b ,c")
	assert.Equal(t, []string{
		"pylint", "pkg", "--disable=C0301,W0703,W0702,broad-except",
		"--ignore", "a,b,c",
	}, got)

	assert.NotContains(t, NewPylint().BuildCommand("pkg", ""), "--ignore")
}

func TestPyre_IgnoresExclude(t *testing.T) {
	p := NewPyre()
	for _, exclude := range []string{"", "a, b ,c", "tests,build"} {
		assert.Equal(t, []string{"pyre", "analyze", "/tmp/proj"}, p.BuildCommand("/tmp/proj", exclude))
	}
	var tool Tool = p
	r, ok := tool.(NotFoundReporter)
	require.True(t, ok)
	assert.Contains(t, r.NotFoundMessage(), "Pyre is not installed")
}
