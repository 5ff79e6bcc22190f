package writetranslatedrow

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ayurveda-intake/internal/common/errors"
	"ayurveda-intake/internal/common/logger"
	"ayurveda-intake/internal/models"
	"ayurveda-intake/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, ss *testutil.FakeSpreadsheet) *Service {
	return NewService(ServiceDependencies{
		Spreadsheet: ss,
		Logger:      logger.NewTestLogger(t),
		Now:         func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) },
	}, DefaultConfig())
}

func TestExecute_AppendsRow(t *testing.T) {
	ss := testutil.NewFakeSpreadsheet("translated_intake")

	out, err := newService(t, ss).Execute(context.Background(), &Input{
		SubmissionID: "abc123",
		Result: models.TranslationResult{
			EnglishSummary: "Summary",
			RiskFlags:      "Allergy",
			EnglishFull:    "Full",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2025/01/02 12:04:05", out.TranslatedAt)

	appends := ss.CallsTo("AppendValues")
	require.Len(t, appends, 1)
	assert.Equal(t, "'translated_intake'!A:A", appends[0].Range)
	assert.Equal(t, [][]interface{}{{
		"abc123", "2025/01/02 12:04:05", "Summary", "Allergy", "Full", "",
	}}, appends[0].Rows)
	assert.Len(t, appends[0].Rows[0], len(models.TranslatedIntakeHeaders))
}

func TestExecute_SourceRowWhenKnown(t *testing.T) {
	ss := testutil.NewFakeSpreadsheet("translated_intake")
	row := 42

	_, err := newService(t, ss).Execute(context.Background(), &Input{SubmissionID: "abc", SourceRow: &row})
	require.NoError(t, err)

	rows := ss.Rows("translated_intake")
	require.Len(t, rows, 1)
	assert.Equal(t, 42, rows[0][5])
}

func TestExecute_AppendFails(t *testing.T) {
	ss := testutil.NewFakeSpreadsheet("translated_intake")
	ss.Errors["AppendValues"] = fmt.Errorf("backend error")

	_, err := newService(t, ss).Execute(context.Background(), &Input{SubmissionID: "abc"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeSheetsRequestFailed, errors.CodeOf(err))
}

func TestNewService_NilLoggerDefaultsToNoOp(t *testing.T) {
	ss := testutil.NewFakeSpreadsheet("translated_intake")
	svc := NewService(ServiceDependencies{Spreadsheet: ss}, nil)

	require.NotPanics(t, func() {
		_, err := svc.Execute(context.Background(), &Input{SubmissionID: "abc"})
		require.NoError(t, err)
	})
	assert.Len(t, ss.Rows("translated_intake"), 1)
}
