package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/adboardhq/adboard-api/infrastructure/database/postgres"
	"github.com/adboardhq/adboard-api/internal/domain"
)

const adRequestTable = "ad_requests"

var adRequestColumns = []string{
	"r.id",
	"r.vendor_id",
	"r.ad_type_id",
	"r.title",
	"r.content",
	"r.image_url",
	"r.video_url",
	"r.target_audience",
	"r.requested_start_date",
	"r.requested_end_date",
	"r.daily_budget",
	"r.total_budget",
	"r.status",
	"r.admin_notes",
	"r.rejection_reason",
	"r.reviewed_by",
	"r.reviewed_at",
	"r.priority_level",
	"r.created_at",
	"r.updated_at",
}

type AdRequestRepository interface {
	Create(ctx context.Context, request *domain.AdRequest) error
	GetByID(ctx context.Context, id string) (*domain.AdRequest, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*domain.AdRequest, error)
	ListByStatus(ctx context.Context, statuses []domain.AdRequestStatus) ([]*domain.AdRequest, error)

	// UpdateDraft regrava os campos editáveis de um rascunho. Falha com
	// ErrStateMismatch se a campanha já saiu de draft.
	UpdateDraft(ctx context.Context, request *domain.AdRequest) error

	// TransitionStatus aplica uma transição condicional de estado. A
	// atualização só acontece se o estado atual for o esperado (UPDATE ...
	// WHERE status = expected); zero linhas afetadas vira ErrStateMismatch,
	// o que impede decisões duplicadas e clientes defasados.
	TransitionStatus(ctx context.Context, id string, from, to domain.AdRequestStatus) error

	// Decide registra a decisão do admin (aprovação ou rejeição) junto com
	// revisor, notas e motivo, nas mesmas condições de TransitionStatus.
	Decide(ctx context.Context, id string, to domain.AdRequestStatus, reviewerID string, notes, reason *string) error

	// CompleteExpired marca como completed toda campanha active cuja data
	// final já passou e devolve as campanhas afetadas (varredura agendada)
	CompleteExpired(ctx context.Context, now time.Time) ([]*domain.AdRequest, error)

	// ListVendorIDsByAdType devolve os vendors com campanha ativa de um
	// formato (modo de broadcast "active_campaigns")
	ListVendorIDsByAdType(ctx context.Context, adTypeID string) ([]string, error)

	// ListAllVendorIDs devolve todos os vendors conhecidos pelo marketplace
	// (modo de broadcast "all"), aproximado como todo vendor que já criou
	// alguma campanha
	ListAllVendorIDs(ctx context.Context) ([]string, error)

	VendorStats(ctx context.Context, vendorID string) (*domain.VendorStats, error)
}

type adRequestRepository struct {
	conn *postgres.Connection
}

func NewAdRequestRepository(conn *postgres.Connection) AdRequestRepository {
	return &adRequestRepository{conn: conn}
}

func (r *adRequestRepository) Create(ctx context.Context, request *domain.AdRequest) error {
	query, args, err := squirrel.
		Insert(adRequestTable).
		Columns(
			"id",
			"vendor_id",
			"ad_type_id",
			"title",
			"content",
			"image_url",
			"video_url",
			"target_audience",
			"requested_start_date",
			"requested_end_date",
			"daily_budget",
			"total_budget",
			"status",
			"priority_level",
		).
		Values(
			request.ID,
			request.VendorID,
			request.AdTypeID,
			request.Title,
			request.Content,
			request.ImageURL,
			request.VideoURL,
			request.TargetAudience,
			request.RequestedStartDate,
			request.RequestedEndDate,
			request.DailyBudget,
			request.TotalBudget,
			request.Status,
			request.PriorityLevel,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir campanha: %w", err)
	}

	return nil
}

func (r *adRequestRepository) GetByID(ctx context.Context, id string) (*domain.AdRequest, error) {
	query, args, err := squirrel.
		Select(adRequestColumns...).
		From(adRequestTable + " r").
		Where(squirrel.Eq{"r.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	request, err := r.scanRow(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return request, nil
}

func (r *adRequestRepository) ListByVendor(ctx context.Context, vendorID string) ([]*domain.AdRequest, error) {
	query, args, err := squirrel.
		Select(adRequestColumns...).
		From(adRequestTable + " r").
		Where(squirrel.Eq{"r.vendor_id": vendorID}).
		OrderBy("r.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMany(ctx, query, args)
}

// reviewQueueOrder materializa a prioridade textual em um peso numérico.
// Ordenar a coluna VARCHAR diretamente colocaria "normal" antes de "high" e
// inverteria a fila de revisão.
const reviewQueueOrder = "CASE r.priority_level WHEN 'high' THEN 3 WHEN 'normal' THEN 2 ELSE 1 END DESC"

func listByStatusQuery(statuses []domain.AdRequestStatus) (string, []interface{}, error) {
	builder := squirrel.
		Select(adRequestColumns...).
		From(adRequestTable+" r").
		OrderBy(reviewQueueOrder, "r.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"r.status": statuses})
	}

	return builder.ToSql()
}

func (r *adRequestRepository) ListByStatus(ctx context.Context, statuses []domain.AdRequestStatus) ([]*domain.AdRequest, error) {
	query, args, err := listByStatusQuery(statuses)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMany(ctx, query, args)
}

func (r *adRequestRepository) UpdateDraft(ctx context.Context, request *domain.AdRequest) error {
	query, args, err := squirrel.
		Update(adRequestTable).
		Set("title", request.Title).
		Set("content", request.Content).
		Set("image_url", request.ImageURL).
		Set("video_url", request.VideoURL).
		Set("target_audience", request.TargetAudience).
		Set("requested_start_date", request.RequestedStartDate).
		Set("requested_end_date", request.RequestedEndDate).
		Set("daily_budget", request.DailyBudget).
		Set("total_budget", request.TotalBudget).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{
			"id":     request.ID,
			"status": domain.AdRequestStatusDraft,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar rascunho: %w", err)
	}

	return checkAffected(result)
}

func (r *adRequestRepository) TransitionStatus(ctx context.Context, id string, from, to domain.AdRequestStatus) error {
	query, args, err := squirrel.
		Update(adRequestTable).
		Set("status", to).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id, "status": from}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de transição: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao aplicar transição: %w", err)
	}

	return checkAffected(result)
}

func (r *adRequestRepository) Decide(
	ctx context.Context,
	id string,
	to domain.AdRequestStatus,
	reviewerID string,
	notes, reason *string,
) error {
	query, args, err := squirrel.
		Update(adRequestTable).
		Set("status", to).
		Set("reviewed_by", reviewerID).
		Set("reviewed_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Set("admin_notes", notes).
		Set("rejection_reason", reason).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id, "status": domain.AdRequestStatusPending}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de decisão: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao registrar decisão: %w", err)
	}

	return checkAffected(result)
}

func (r *adRequestRepository) CompleteExpired(ctx context.Context, now time.Time) ([]*domain.AdRequest, error) {
	// UPDATE ... RETURNING para devolver as campanhas encerradas em uma
	// única operação atômica
	query := `
		UPDATE ` + adRequestTable + `
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE status = $2 AND requested_end_date < $3
		RETURNING id, vendor_id, ad_type_id, title, content, image_url, video_url,
			target_audience, requested_start_date, requested_end_date, daily_budget,
			total_budget, status, admin_notes, rejection_reason, reviewed_by,
			reviewed_at, priority_level, created_at, updated_at`

	rows, err := r.conn.QueryContext(ctx, query,
		domain.AdRequestStatusCompleted,
		domain.AdRequestStatusActive,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao encerrar campanhas expiradas: %w", err)
	}
	defer rows.Close()

	requests := make([]*domain.AdRequest, 0)
	for rows.Next() {
		request, err := r.scanRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha encerrada: %w", err)
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return requests, nil
}

func (r *adRequestRepository) ListVendorIDsByAdType(ctx context.Context, adTypeID string) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT r.vendor_id").
		From(adRequestTable + " r").
		Where(squirrel.Eq{
			"r.ad_type_id": adTypeID,
			"r.status": []domain.AdRequestStatus{
				domain.AdRequestStatusApproved,
				domain.AdRequestStatusPaymentPending,
				domain.AdRequestStatusPaid,
				domain.AdRequestStatusActive,
			},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryVendorIDs(ctx, query, args)
}

func (r *adRequestRepository) ListAllVendorIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT r.vendor_id").
		From(adRequestTable + " r").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryVendorIDs(ctx, query, args)
}

func (r *adRequestRepository) VendorStats(ctx context.Context, vendorID string) (*domain.VendorStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COALESCE(SUM(total_budget) FILTER (WHERE status IN ('paid', 'active', 'completed')), 0)
		FROM ` + adRequestTable + `
		WHERE vendor_id = $1`

	stats := &domain.VendorStats{}
	err := r.conn.QueryRowContext(ctx, query, vendorID).Scan(
		&stats.TotalRequests,
		&stats.PendingCount,
		&stats.ApprovedCount,
		&stats.ActiveCount,
		&stats.RejectedCount,
		&stats.CompletedCount,
		&stats.TotalSpend,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular estatísticas do vendor: %w", err)
	}

	return stats, nil
}

func (r *adRequestRepository) queryMany(ctx context.Context, query string, args []interface{}) ([]*domain.AdRequest, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	requests := make([]*domain.AdRequest, 0)
	for rows.Next() {
		request, err := r.scanRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return requests, nil
}

func (r *adRequestRepository) queryVendorIDs(ctx context.Context, query string, args []interface{}) ([]string, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	vendorIDs := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendor: %w", err)
		}
		vendorIDs = append(vendorIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return vendorIDs, nil
}

func (r *adRequestRepository) scanRow(row *sql.Row) (*domain.AdRequest, error) {
	request := &domain.AdRequest{}
	err := row.Scan(
		&request.ID,
		&request.VendorID,
		&request.AdTypeID,
		&request.Title,
		&request.Content,
		&request.ImageURL,
		&request.VideoURL,
		&request.TargetAudience,
		&request.RequestedStartDate,
		&request.RequestedEndDate,
		&request.DailyBudget,
		&request.TotalBudget,
		&request.Status,
		&request.AdminNotes,
		&request.RejectionReason,
		&request.ReviewedBy,
		&request.ReviewedAt,
		&request.PriorityLevel,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (r *adRequestRepository) scanRows(rows *sql.Rows) (*domain.AdRequest, error) {
	request := &domain.AdRequest{}
	err := rows.Scan(
		&request.ID,
		&request.VendorID,
		&request.AdTypeID,
		&request.Title,
		&request.Content,
		&request.ImageURL,
		&request.VideoURL,
		&request.TargetAudience,
		&request.RequestedStartDate,
		&request.RequestedEndDate,
		&request.DailyBudget,
		&request.TotalBudget,
		&request.Status,
		&request.AdminNotes,
		&request.RejectionReason,
		&request.ReviewedBy,
		&request.ReviewedAt,
		&request.PriorityLevel,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return request, nil
}

// checkAffected traduz zero linhas afetadas em ErrStateMismatch
func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrStateMismatch
	}
	return nil
}
