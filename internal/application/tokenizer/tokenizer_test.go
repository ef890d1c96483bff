package tokenizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/procsh/internal/domain"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.CommandLine
	}{
		{name: "simple command", input: "ls", expected: domain.CommandLine{"ls"}},
		{name: "command with arguments", input: "ls -la /home/user", expected: domain.CommandLine{"ls", "-la", "/home/user"}},
		{name: "trailing newline stripped", input: "ls -l\n", expected: domain.CommandLine{"ls", "-l"}},
		{name: "empty line", input: "", expected: domain.CommandLine{""}},
		{name: "newline only", input: "\n", expected: domain.CommandLine{""}},
		{name: "blank line", input: "  \t ", expected: domain.CommandLine{""}},
		{name: "repeated blanks", input: "echo    hello \t world", expected: domain.CommandLine{"echo", "hello", "world"}},
		{name: "leading blank", input: " ls", expected: domain.CommandLine{"ls"}},
		{name: "single quoted region", input: "echo 'hello world'", expected: domain.CommandLine{"echo", "hello world"}},
		{name: "double quoted region", input: `echo "hello world"`, expected: domain.CommandLine{"echo", "hello world"}},
		{name: "two quoted regions", input: `echo "a b" 'c d'`, expected: domain.CommandLine{"echo", "a b", "c d"}},
		{name: "adjacent quoted runs", input: `echo "hello"'world'`, expected: domain.CommandLine{"echo", "helloworld"}},
		{name: "escaped space", input: `cat my\ file`, expected: domain.CommandLine{"cat", "my file"}},
		{name: "escaped quote in double quotes", input: `echo "say \"hi\""`, expected: domain.CommandLine{"echo", `say "hi"`}},
		{name: "c escapes resolved", input: `printf a\tb\n`, expected: domain.CommandLine{"printf", "a\tb\n"}},
		{name: "hex escape", input: `echo \x41`, expected: domain.CommandLine{"echo", "A"}},
		{name: "octal escape", input: `echo \101`, expected: domain.CommandLine{"echo", "A"}},
		{name: "single quotes are literal", input: `echo 'a\nb'`, expected: domain.CommandLine{"echo", `a\nb`}},
		{name: "quoted empty token", input: `echo ""`, expected: domain.CommandLine{"echo", ""}},
		{name: "proc path stays one token", input: "/proc/cpuinfo", expected: domain.CommandLine{"/proc/cpuinfo"}},
		{name: "utf8 passes through", input: "echo héllo", expected: domain.CommandLine{"echo", "héllo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTokenizeNoUnquotedBlankYieldsOneToken(t *testing.T) {
	inputs := []string{"ls", "/proc", `a\ b\ c`, `"x y z"`, `'p q'`, "héllo"}
	for _, in := range inputs {
		got, err := Tokenize(in)
		require.NoError(t, err, in)
		assert.Len(t, got, 1, in)
	}
}

func TestTokenizeReportsButRecovers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.CommandLine
		errIs    error
	}{
		{name: "unknown escape kept literally", input: `echo \q`, expected: domain.CommandLine{"echo", `\q`}, errIs: ErrEscape},
		{name: "trailing backslash", input: `echo hi\`, expected: domain.CommandLine{"echo", `hi\`}, errIs: ErrEscape},
		{name: "hex without digits", input: `echo \xzz`, expected: domain.CommandLine{"echo", `\xzz`}, errIs: ErrEscape},
		{name: "unclosed single quote", input: "echo 'hello world", expected: domain.CommandLine{"echo", "hello world"}, errIs: ErrUnclosedQuote},
		{name: "unclosed double quote", input: `echo "hello`, expected: domain.CommandLine{"echo", "hello"}, errIs: ErrUnclosedQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.errIs), "got %v", err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTokenizeCollectsEveryProblem(t *testing.T) {
	got, err := Tokenize(`echo \q \w "open`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEscape)
	assert.ErrorIs(t, err, ErrUnclosedQuote)
	assert.Equal(t, domain.CommandLine{"echo", `\q`, `\w`, "open"}, got)
}

func TestEncodedLinesRoundTrip(t *testing.T) {
	lines := []domain.CommandLine{
		{"ls"},
		{"ls", "-la", "/tmp"},
		{""},
		{"echo", "hello world"},
		{"echo", ""},
		{"echo", `back\slash`, `"quoted"`, "it's"},
		{"printf", "tab\there", "line\nbreak", "bell\a"},
		{"echo", "héllo", "\xff"},
		{"history", "3"},
	}

	for _, line := range lines {
		encoded := line.Encode()
		got, err := Tokenize(encoded)
		require.NoError(t, err, encoded)
		assert.Equal(t, line, got, "encoded as %q", encoded)
	}
}

