package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connect0459/babysitter-pay/internal/application"
)

const familiesYAML = `families:
  - name: A
    rates:
      - {start: 17, end: 23, rate: 15}
      - {start: 23, end: 24, rate: 20}
      - {start: 0, end: 4, rate: 20}
  - name: C
    rates:
      - {start: 17, end: 21, rate: 21}
      - {start: 21, end: 24, rate: 15}
      - {start: 0, end: 4, rate: 15}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "families.yaml")
	require.NoError(t, os.WriteFile(path, []byte(familiesYAML), 0644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--families-file", path))

	err := cmd.Execute()
	return out.String(), err
}

func TestQuoteCommand(t *testing.T) {
	t.Run("見積もりを表示する", func(t *testing.T) {
		out, err := run(t, "quote", "--family", "A", "--start", "6pm", "--end", "2am")

		require.NoError(t, err)
		assert.Contains(t, out, "家庭: A")
		assert.Contains(t, out, "6pm ~ 2am (8時間)")
		assert.Contains(t, out, "報酬合計: 135")
	})

	t.Run("内訳を表示する", func(t *testing.T) {
		out, err := run(t, "quote", "--family", "C", "--start", "17", "--end", "23", "--breakdown")

		require.NoError(t, err)
		assert.Contains(t, out, "  9pm   15\n")
		assert.Contains(t, out, "報酬合計: 114")
	})

	t.Run("strictモードでは勤務時間外の依頼はエラーになる", func(t *testing.T) {
		_, err := run(t, "quote", "--family", "A", "--start", "4pm", "--end", "8pm", "--strict")

		assert.True(t, errors.Is(err, application.ErrInvalidShift), "%v", err)
	})

	t.Run("解釈できない時刻はエラーになる", func(t *testing.T) {
		_, err := run(t, "quote", "--family", "A", "--start", "evening", "--end", "2am")

		assert.Error(t, err)
	})
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "--start", "0", "--end", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "勤務時間内: no")
	assert.Contains(t, out, "開始 < 終了: yes")
	assert.Contains(t, out, "判定: 無効")
}

// runWithoutFamilies は家庭定義ファイルが存在しない状態でコマンドを実行する
func runWithoutFamilies(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("FAMILIES_FILE", "families.yaml")
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCommandsWithoutFamiliesFile(t *testing.T) {
	t.Run("validateは家庭定義ファイルがなくても実行できる", func(t *testing.T) {
		out, err := runWithoutFamilies(t, "validate", "--start", "17", "--end", "19")

		require.NoError(t, err)
		assert.Contains(t, out, "判定: 有効")
	})

	t.Run("quoteは家庭定義ファイルがない場合エラーになる", func(t *testing.T) {
		_, err := runWithoutFamilies(t, "quote", "--family", "A", "--start", "17", "--end", "19")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load families")
	})
}

func TestFamiliesCommand(t *testing.T) {
	out, err := run(t, "families")

	require.NoError(t, err)
	assert.Contains(t, out, "A: [17, 23)=15 [23, 24)=20 [0, 4)=20")
	assert.Contains(t, out, "C: ")
}
