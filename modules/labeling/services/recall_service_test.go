package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRecallReport_OnlyLotBearingApprovedSpecs(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	recalls := NewRecallReportService(repo)
	ctx := context.Background()
	actor := uuid.New()

	withLot := approvableDTO()
	withLot.LotNumber = "LOT-260315-01"
	withLot.BatchID = "B-2026-031"
	first := approveSpec(t, svc, ctx, "HX-100", actor, withLot)

	// Second approved version has no lot and must not appear.
	second, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	_, err = svc.UpdateContent(ctx, second.ID, approvableDTO(), actor)
	require.NoError(t, err)
	_, err = svc.QAApproveSpec(ctx, second.ID, actor)
	require.NoError(t, err)
	_, err = svc.ApproveSpec(ctx, second.ID, actor)
	require.NoError(t, err)

	// A draft with a lot number must not appear either.
	draft, err := svc.CreateDraft(ctx, "HX-100", actor)
	require.NoError(t, err)
	draftDTO := approvableDTO()
	draftDTO.LotNumber = "LOT-260401-01"
	_, err = svc.UpdateContent(ctx, draft.ID, draftDTO, actor)
	require.NoError(t, err)

	rows, err := recalls.Generate(ctx, "HX-100")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, first.ID, rows[0].SpecID)
	require.Equal(t, "LOT-260315-01", rows[0].LotNumber)
	require.NotNil(t, rows[0].BatchID)
	require.Equal(t, "B-2026-031", *rows[0].BatchID)
	require.NotNil(t, rows[0].ApprovedAt)
}

func TestRecallReport_XLSXIsReadable(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	recalls := NewRecallReportService(repo)
	ctx := context.Background()
	actor := uuid.New()

	dto := approvableDTO()
	dto.LotNumber = "LOT-260315-01"
	approveSpec(t, svc, ctx, "HX-100", actor, dto)

	data, err := recalls.GenerateXLSX(ctx, "HX-100")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	rows, err := f.GetRows("Recall Report")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Product ID", rows[0][0])
	require.Equal(t, "HX-100", rows[1][0])
}

func TestRecallReport_EmptyProduct(t *testing.T) {
	recalls := NewRecallReportService(newMemoryRepo())

	rows, err := recalls.Generate(context.Background(), "HX-900")
	require.NoError(t, err)
	require.Empty(t, rows)
}
