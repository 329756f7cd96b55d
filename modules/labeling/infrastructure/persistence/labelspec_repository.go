package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/herbalogix/labelspec/modules/labeling/domain/aggregates/labelspec"
	"github.com/herbalogix/labelspec/modules/labeling/infrastructure/persistence/models"
	"github.com/herbalogix/labelspec/pkg/composables"
)

const uniqueViolation = "23505"

const specColumns = `id, product_id, version, status, qa_approved, qa_approved_by, qa_approved_at,
	approved_by, approved_at, created_by, created_at, updated_at`

const contentColumns = `spec_id, product_name_en, product_name_fr, claim_en, claim_fr,
	directions_en, directions_fr, warning_en, warning_fr,
	duration_en, duration_fr, storage_en, storage_fr,
	company_block_en, company_block_fr, website, made_in, distributed_by, npn,
	dosage_form, medicinal, non_medicinal_en, non_medicinal_fr,
	batch_id, batch_date, shelf_life_months, lot_number, expiry_date,
	coa_file_path, coa_file_name, override_storage_flag, override_lot_expiry_flag,
	risk_flags, updated_at`

// LabelSpecRepository persists specs, content and the activity trail in
// Postgres. It reads its connection from the context: a transaction when the
// caller opened one via InTx, the pool otherwise.
type LabelSpecRepository struct{}

func NewLabelSpecRepository() labelspec.Repository {
	return &LabelSpecRepository{}
}

func (r *LabelSpecRepository) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return composables.InTx(ctx, fn)
}

func (r *LabelSpecRepository) GetSpec(ctx context.Context, id uuid.UUID) (labelspec.Spec, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return labelspec.Spec{}, err
	}

	row := tx.QueryRow(ctx, `SELECT `+specColumns+` FROM label_specs WHERE id = $1`, id)
	spec, err := scanSpec(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return labelspec.Spec{}, labelspec.ErrNotFound
	}
	if err != nil {
		return labelspec.Spec{}, errors.Wrap(err, "get spec")
	}
	return spec, nil
}

func (r *LabelSpecRepository) InsertSpec(ctx context.Context, spec labelspec.Spec) (labelspec.Spec, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return labelspec.Spec{}, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO label_specs (id, product_id, version, status, qa_approved, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		spec.ID,
		spec.ProductID,
		spec.Version,
		string(spec.Status),
		spec.QAApproved,
		spec.CreatedBy,
		spec.CreatedAt,
		spec.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return labelspec.Spec{}, labelspec.ErrVersionConflict
		}
		return labelspec.Spec{}, errors.Wrap(err, "insert spec")
	}
	return spec, nil
}

func (r *LabelSpecRepository) UpdateSpec(ctx context.Context, id uuid.UUID, patch labelspec.SpecPatch) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	sets := make([]string, 0, 6)
	args := make([]interface{}, 0, 7)
	argPos := 1
	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.QAApproved != nil {
		add("qa_approved", *patch.QAApproved)
	}
	if patch.QAApprovedBy != nil {
		add("qa_approved_by", *patch.QAApprovedBy)
	}
	if patch.QAApprovedAt != nil {
		add("qa_approved_at", *patch.QAApprovedAt)
	}
	if patch.ApprovedBy != nil {
		add("approved_by", *patch.ApprovedBy)
	}
	if patch.ApprovedAt != nil {
		add("approved_at", *patch.ApprovedAt)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")

	query := fmt.Sprintf(
		"UPDATE label_specs SET %s WHERE id = $%d",
		strings.Join(sets, ", "),
		argPos,
	)
	args = append(args, id)

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "update spec")
	}
	if tag.RowsAffected() == 0 {
		return labelspec.ErrNotFound
	}
	return nil
}

func (r *LabelSpecRepository) MaxVersion(ctx context.Context, productID string) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	var version int
	if err := tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM label_specs WHERE product_id = $1`,
		productID,
	).Scan(&version); err != nil {
		return 0, errors.Wrap(err, "max version")
	}
	return version, nil
}

func (r *LabelSpecRepository) ListByProduct(ctx context.Context, productID string, status *labelspec.Status) ([]labelspec.Spec, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + specColumns + ` FROM label_specs WHERE product_id = $1`
	args := []interface{}{productID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, string(*status))
	}
	query += ` ORDER BY version DESC`

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list specs")
	}
	defer rows.Close()

	specs := make([]labelspec.Spec, 0)
	for rows.Next() {
		spec, err := scanSpec(rows)
		if err != nil {
			return nil, errors.Wrap(err, "list specs")
		}
		specs = append(specs, spec)
	}
	return specs, rows.Err()
}

func (r *LabelSpecRepository) GetContent(ctx context.Context, specID uuid.UUID) (labelspec.Content, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return labelspec.Content{}, err
	}

	row := tx.QueryRow(ctx, `SELECT `+contentColumns+` FROM label_spec_contents WHERE spec_id = $1`, specID)
	content, err := scanContent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return labelspec.Content{}, labelspec.ErrContentNotFound
	}
	if err != nil {
		return labelspec.Content{}, errors.Wrap(err, "get content")
	}
	return content, nil
}

func (r *LabelSpecRepository) UpsertContent(ctx context.Context, content labelspec.Content) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	row, err := toDBContent(content)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO label_spec_contents (`+contentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34)
		ON CONFLICT (spec_id) DO UPDATE SET
			product_name_en = EXCLUDED.product_name_en,
			product_name_fr = EXCLUDED.product_name_fr,
			claim_en = EXCLUDED.claim_en,
			claim_fr = EXCLUDED.claim_fr,
			directions_en = EXCLUDED.directions_en,
			directions_fr = EXCLUDED.directions_fr,
			warning_en = EXCLUDED.warning_en,
			warning_fr = EXCLUDED.warning_fr,
			duration_en = EXCLUDED.duration_en,
			duration_fr = EXCLUDED.duration_fr,
			storage_en = EXCLUDED.storage_en,
			storage_fr = EXCLUDED.storage_fr,
			company_block_en = EXCLUDED.company_block_en,
			company_block_fr = EXCLUDED.company_block_fr,
			website = EXCLUDED.website,
			made_in = EXCLUDED.made_in,
			distributed_by = EXCLUDED.distributed_by,
			npn = EXCLUDED.npn,
			dosage_form = EXCLUDED.dosage_form,
			medicinal = EXCLUDED.medicinal,
			non_medicinal_en = EXCLUDED.non_medicinal_en,
			non_medicinal_fr = EXCLUDED.non_medicinal_fr,
			batch_id = EXCLUDED.batch_id,
			batch_date = EXCLUDED.batch_date,
			shelf_life_months = EXCLUDED.shelf_life_months,
			lot_number = EXCLUDED.lot_number,
			expiry_date = EXCLUDED.expiry_date,
			coa_file_path = EXCLUDED.coa_file_path,
			coa_file_name = EXCLUDED.coa_file_name,
			override_storage_flag = EXCLUDED.override_storage_flag,
			override_lot_expiry_flag = EXCLUDED.override_lot_expiry_flag,
			risk_flags = EXCLUDED.risk_flags,
			updated_at = EXCLUDED.updated_at`,
		row.SpecID,
		row.ProductNameEN,
		row.ProductNameFR,
		row.ClaimEN,
		row.ClaimFR,
		row.DirectionsEN,
		row.DirectionsFR,
		row.WarningEN,
		row.WarningFR,
		row.DurationEN,
		row.DurationFR,
		row.StorageEN,
		row.StorageFR,
		row.CompanyBlockEN,
		row.CompanyBlockFR,
		row.Website,
		row.MadeIn,
		row.DistributedBy,
		row.NPN,
		row.DosageForm,
		row.Medicinal,
		row.NonMedicinalEN,
		row.NonMedicinalFR,
		row.BatchID,
		row.BatchDate,
		row.ShelfLifeMonths,
		row.LotNumber,
		row.ExpiryDate,
		row.CoAFilePath,
		row.CoAFileName,
		row.OverrideStorage,
		row.OverrideLotExpiry,
		row.RiskFlags,
		row.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "upsert content")
	}
	return nil
}

func (r *LabelSpecRepository) QueryApprovedSiblings(ctx context.Context, productID string, excludeID uuid.UUID) ([]labelspec.Content, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT `+prefixColumns("c", contentColumns)+`
		FROM label_spec_contents c
		JOIN label_specs s ON s.id = c.spec_id
		WHERE s.product_id = $1 AND s.status = $2 AND s.id <> $3
		ORDER BY s.version DESC`,
		productID, string(labelspec.StatusApproved), excludeID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "query approved siblings")
	}
	defer rows.Close()

	contents := make([]labelspec.Content, 0)
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, errors.Wrap(err, "query approved siblings")
		}
		contents = append(contents, content)
	}
	return contents, rows.Err()
}

func (r *LabelSpecRepository) QueryApprovedWithContent(ctx context.Context, productID string) ([]labelspec.SpecWithContent, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT `+prefixColumns("s", specColumns)+`, `+prefixColumns("c", contentColumns)+`
		FROM label_specs s
		JOIN label_spec_contents c ON c.spec_id = s.id
		WHERE s.product_id = $1 AND s.status = $2 AND s.qa_approved
		ORDER BY s.version DESC`,
		productID, string(labelspec.StatusApproved),
	)
	if err != nil {
		return nil, errors.Wrap(err, "query approved with content")
	}
	defer rows.Close()

	bundles := make([]labelspec.SpecWithContent, 0)
	for rows.Next() {
		var specRow models.LabelSpec
		var contentRow models.LabelSpecContent
		if err := rows.Scan(
			&specRow.ID,
			&specRow.ProductID,
			&specRow.Version,
			&specRow.Status,
			&specRow.QAApproved,
			&specRow.QAApprovedBy,
			&specRow.QAApprovedAt,
			&specRow.ApprovedBy,
			&specRow.ApprovedAt,
			&specRow.CreatedBy,
			&specRow.CreatedAt,
			&specRow.UpdatedAt,
			&contentRow.SpecID,
			&contentRow.ProductNameEN,
			&contentRow.ProductNameFR,
			&contentRow.ClaimEN,
			&contentRow.ClaimFR,
			&contentRow.DirectionsEN,
			&contentRow.DirectionsFR,
			&contentRow.WarningEN,
			&contentRow.WarningFR,
			&contentRow.DurationEN,
			&contentRow.DurationFR,
			&contentRow.StorageEN,
			&contentRow.StorageFR,
			&contentRow.CompanyBlockEN,
			&contentRow.CompanyBlockFR,
			&contentRow.Website,
			&contentRow.MadeIn,
			&contentRow.DistributedBy,
			&contentRow.NPN,
			&contentRow.DosageForm,
			&contentRow.Medicinal,
			&contentRow.NonMedicinalEN,
			&contentRow.NonMedicinalFR,
			&contentRow.BatchID,
			&contentRow.BatchDate,
			&contentRow.ShelfLifeMonths,
			&contentRow.LotNumber,
			&contentRow.ExpiryDate,
			&contentRow.CoAFilePath,
			&contentRow.CoAFileName,
			&contentRow.OverrideStorage,
			&contentRow.OverrideLotExpiry,
			&contentRow.RiskFlags,
			&contentRow.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "query approved with content")
		}
		spec, err := toDomainSpec(&specRow)
		if err != nil {
			return nil, err
		}
		content, err := toDomainContent(&contentRow)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, labelspec.SpecWithContent{Spec: spec, Content: &content})
	}
	return bundles, rows.Err()
}

func (r *LabelSpecRepository) AppendActivityLog(ctx context.Context, entry labelspec.ActivityLogEntry) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	var actor *string
	if entry.Actor != nil {
		value := entry.Actor.String()
		actor = &value
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO label_spec_activity (id, spec_id, field, action, old_value, new_value, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID,
		entry.SpecID,
		entry.Field,
		entry.Action,
		entry.OldValue,
		entry.NewValue,
		actor,
		entry.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "append activity")
	}
	return nil
}

func (r *LabelSpecRepository) ListActivity(ctx context.Context, specID uuid.UUID) ([]labelspec.ActivityLogEntry, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT id, spec_id, field, action, old_value, new_value, actor, created_at
		FROM label_spec_activity
		WHERE spec_id = $1
		ORDER BY created_at ASC, id ASC`,
		specID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "list activity")
	}
	defer rows.Close()

	entries := make([]labelspec.ActivityLogEntry, 0)
	for rows.Next() {
		var row models.ActivityLogEntry
		if err := rows.Scan(
			&row.ID,
			&row.SpecID,
			&row.Field,
			&row.Action,
			&row.OldValue,
			&row.NewValue,
			&row.Actor,
			&row.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "list activity")
		}
		entry, err := toDomainActivityEntry(&row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSpec(row rowScanner) (labelspec.Spec, error) {
	var dbRow models.LabelSpec
	if err := row.Scan(
		&dbRow.ID,
		&dbRow.ProductID,
		&dbRow.Version,
		&dbRow.Status,
		&dbRow.QAApproved,
		&dbRow.QAApprovedBy,
		&dbRow.QAApprovedAt,
		&dbRow.ApprovedBy,
		&dbRow.ApprovedAt,
		&dbRow.CreatedBy,
		&dbRow.CreatedAt,
		&dbRow.UpdatedAt,
	); err != nil {
		return labelspec.Spec{}, err
	}
	return toDomainSpec(&dbRow)
}

func scanContent(row rowScanner) (labelspec.Content, error) {
	var dbRow models.LabelSpecContent
	if err := row.Scan(
		&dbRow.SpecID,
		&dbRow.ProductNameEN,
		&dbRow.ProductNameFR,
		&dbRow.ClaimEN,
		&dbRow.ClaimFR,
		&dbRow.DirectionsEN,
		&dbRow.DirectionsFR,
		&dbRow.WarningEN,
		&dbRow.WarningFR,
		&dbRow.DurationEN,
		&dbRow.DurationFR,
		&dbRow.StorageEN,
		&dbRow.StorageFR,
		&dbRow.CompanyBlockEN,
		&dbRow.CompanyBlockFR,
		&dbRow.Website,
		&dbRow.MadeIn,
		&dbRow.DistributedBy,
		&dbRow.NPN,
		&dbRow.DosageForm,
		&dbRow.Medicinal,
		&dbRow.NonMedicinalEN,
		&dbRow.NonMedicinalFR,
		&dbRow.BatchID,
		&dbRow.BatchDate,
		&dbRow.ShelfLifeMonths,
		&dbRow.LotNumber,
		&dbRow.ExpiryDate,
		&dbRow.CoAFilePath,
		&dbRow.CoAFileName,
		&dbRow.OverrideStorage,
		&dbRow.OverrideLotExpiry,
		&dbRow.RiskFlags,
		&dbRow.UpdatedAt,
	); err != nil {
		return labelspec.Content{}, err
	}
	return toDomainContent(&dbRow)
}

// prefixColumns qualifies a comma separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = alias + "." + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}
