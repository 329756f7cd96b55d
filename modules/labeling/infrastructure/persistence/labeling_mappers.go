package persistence

import (
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
	"github.com/herbalogix/labelspec/modules/labeling/infrastructure/persistence/models"
)

func toDomainSpec(row *models.LabelSpec) (labelspec.Spec, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return labelspec.Spec{}, errors.Wrap(err, "invalid spec id")
	}
	createdBy, err := uuid.Parse(row.CreatedBy)
	if err != nil {
		return labelspec.Spec{}, errors.Wrap(err, "invalid created_by")
	}

	spec := labelspec.Spec{
		ID:           id,
		ProductID:    row.ProductID,
		Version:      row.Version,
		Status:       labelspec.Status(row.Status),
		QAApproved:   row.QAApproved,
		QAApprovedAt: row.QAApprovedAt,
		ApprovedAt:   row.ApprovedAt,
		CreatedBy:    createdBy,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.QAApprovedBy != nil {
		actor, err := uuid.Parse(*row.QAApprovedBy)
		if err != nil {
			return labelspec.Spec{}, errors.Wrap(err, "invalid qa_approved_by")
		}
		spec.QAApprovedBy = &actor
	}
	if row.ApprovedBy != nil {
		actor, err := uuid.Parse(*row.ApprovedBy)
		if err != nil {
			return labelspec.Spec{}, errors.Wrap(err, "invalid approved_by")
		}
		spec.ApprovedBy = &actor
	}
	return spec, nil
}

func toDomainContent(row *models.LabelSpecContent) (labelspec.Content, error) {
	specID, err := uuid.Parse(row.SpecID)
	if err != nil {
		return labelspec.Content{}, errors.Wrap(err, "invalid spec id")
	}

	content := labelspec.Content{
		SpecID:            specID,
		ProductNameEN:     row.ProductNameEN,
		ProductNameFR:     row.ProductNameFR,
		ClaimEN:           row.ClaimEN,
		ClaimFR:           row.ClaimFR,
		DirectionsEN:      row.DirectionsEN,
		DirectionsFR:      row.DirectionsFR,
		WarningEN:         row.WarningEN,
		WarningFR:         row.WarningFR,
		DurationEN:        row.DurationEN,
		DurationFR:        row.DurationFR,
		StorageEN:         row.StorageEN,
		StorageFR:         row.StorageFR,
		CompanyBlockEN:    row.CompanyBlockEN,
		CompanyBlockFR:    row.CompanyBlockFR,
		Website:           row.Website,
		MadeIn:            row.MadeIn,
		DistributedBy:     row.DistributedBy,
		NPN:               row.NPN,
		DosageForm:        row.DosageForm,
		NonMedicinalEN:    row.NonMedicinalEN,
		NonMedicinalFR:    row.NonMedicinalFR,
		BatchID:           row.BatchID,
		BatchDate:         row.BatchDate,
		ShelfLifeMonths:   row.ShelfLifeMonths,
		LotNumber:         row.LotNumber,
		ExpiryDate:        row.ExpiryDate,
		CoAFilePath:       row.CoAFilePath,
		CoAFileName:       row.CoAFileName,
		OverrideStorage:   row.OverrideStorage,
		OverrideLotExpiry: row.OverrideLotExpiry,
		UpdatedAt:         row.UpdatedAt,
	}

	content.Medicinal = make([]labelspec.MedicinalItem, 0)
	if len(row.Medicinal) > 0 {
		if err := json.Unmarshal(row.Medicinal, &content.Medicinal); err != nil {
			return labelspec.Content{}, errors.Wrap(err, "decode medicinal")
		}
	}
	content.RiskFlags = make([]labelspec.RiskFlag, 0)
	if len(row.RiskFlags) > 0 {
		if err := json.Unmarshal(row.RiskFlags, &content.RiskFlags); err != nil {
			return labelspec.Content{}, errors.Wrap(err, "decode risk flags")
		}
	}
	return content, nil
}

func toDBContent(content labelspec.Content) (*models.LabelSpecContent, error) {
	medicinal, err := json.Marshal(content.Medicinal)
	if err != nil {
		return nil, errors.Wrap(err, "encode medicinal")
	}
	riskFlags, err := json.Marshal(content.RiskFlags)
	if err != nil {
		return nil, errors.Wrap(err, "encode risk flags")
	}

	return &models.LabelSpecContent{
		SpecID:            content.SpecID.String(),
		ProductNameEN:     content.ProductNameEN,
		ProductNameFR:     content.ProductNameFR,
		ClaimEN:           content.ClaimEN,
		ClaimFR:           content.ClaimFR,
		DirectionsEN:      content.DirectionsEN,
		DirectionsFR:      content.DirectionsFR,
		WarningEN:         content.WarningEN,
		WarningFR:         content.WarningFR,
		DurationEN:        content.DurationEN,
		DurationFR:        content.DurationFR,
		StorageEN:         content.StorageEN,
		StorageFR:         content.StorageFR,
		CompanyBlockEN:    content.CompanyBlockEN,
		CompanyBlockFR:    content.CompanyBlockFR,
		Website:           content.Website,
		MadeIn:            content.MadeIn,
		DistributedBy:     content.DistributedBy,
		NPN:               content.NPN,
		DosageForm:        content.DosageForm,
		Medicinal:         medicinal,
		NonMedicinalEN:    content.NonMedicinalEN,
		NonMedicinalFR:    content.NonMedicinalFR,
		BatchID:           content.BatchID,
		BatchDate:         content.BatchDate,
		ShelfLifeMonths:   content.ShelfLifeMonths,
		LotNumber:         content.LotNumber,
		ExpiryDate:        content.ExpiryDate,
		CoAFilePath:       content.CoAFilePath,
		CoAFileName:       content.CoAFileName,
		OverrideStorage:   content.OverrideStorage,
		OverrideLotExpiry: content.OverrideLotExpiry,
		RiskFlags:         riskFlags,
		UpdatedAt:         content.UpdatedAt,
	}, nil
}

func toDomainActivityEntry(row *models.ActivityLogEntry) (labelspec.ActivityLogEntry, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return labelspec.ActivityLogEntry{}, errors.Wrap(err, "invalid entry id")
	}
	specID, err := uuid.Parse(row.SpecID)
	if err != nil {
		return labelspec.ActivityLogEntry{}, errors.Wrap(err, "invalid spec id")
	}

	entry := labelspec.ActivityLogEntry{
		ID:        id,
		SpecID:    specID,
		Field:     row.Field,
		Action:    row.Action,
		OldValue:  row.OldValue,
		NewValue:  row.NewValue,
		CreatedAt: row.CreatedAt,
	}
	if row.Actor != nil {
		actor, err := uuid.Parse(*row.Actor)
		if err != nil {
			return labelspec.ActivityLogEntry{}, errors.Wrap(err, "invalid actor")
		}
		entry.Actor = &actor
	}
	return entry, nil
}
