package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/adboardhq/adboard-api/infrastructure/database/postgres"
	"github.com/adboardhq/adboard-api/internal/domain"
)

const paymentTable = "payments"

type PaymentRepository interface {
	// FindByGatewayTransactionID localiza uma tentativa já registrada com o
	// mesmo id de transação do gateway (proteção de idempotência)
	FindByGatewayTransactionID(ctx context.Context, gatewayTransactionID string) (*domain.Payment, error)

	// CreateCompletedAndActivate persiste o pagamento como completed, aplica
	// a transição approved → active na campanha e cria o placement, tudo em
	// uma única transação. Se a campanha não estiver mais em approved nada é
	// gravado (ErrStateMismatch); se o gateway_transaction_id já existir, a
	// violação de unicidade vira ErrDuplicateTransaction.
	CreateCompletedAndActivate(ctx context.Context, payment *domain.Payment, placement *domain.Placement) error

	// CreateAttempt registra uma tentativa não autoritativa (failed,
	// cancelled) para a trilha de auditoria
	CreateAttempt(ctx context.Context, payment *domain.Payment) error

	ListByVendor(ctx context.Context, vendorID string) ([]*domain.Payment, error)
}

type paymentRepository struct {
	conn *postgres.Connection
}

func NewPaymentRepository(conn *postgres.Connection) PaymentRepository {
	return &paymentRepository{conn: conn}
}

var paymentColumns = []string{
	"p.id",
	"p.ad_request_id",
	"p.vendor_id",
	"p.amount",
	"p.payment_method",
	"p.gateway_transaction_id",
	"p.status",
	"p.gst_amount",
	"p.platform_fee",
	"p.net_amount",
	"p.receipt_ref",
	"p.payment_date",
	"p.created_at",
}

func (r *paymentRepository) FindByGatewayTransactionID(ctx context.Context, gatewayTransactionID string) (*domain.Payment, error) {
	query, args, err := squirrel.
		Select(paymentColumns...).
		From(paymentTable + " p").
		Where(squirrel.Eq{"p.gateway_transaction_id": gatewayTransactionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	payment := &domain.Payment{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&payment.AdRequestID,
		&payment.VendorID,
		&payment.Amount,
		&payment.PaymentMethod,
		&payment.GatewayTransactionID,
		&payment.Status,
		&payment.GSTAmount,
		&payment.PlatformFee,
		&payment.NetAmount,
		&payment.ReceiptRef,
		&payment.PaymentDate,
		&payment.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear pagamento: %w", err)
	}

	return payment, nil
}

func (r *paymentRepository) CreateCompletedAndActivate(
	ctx context.Context,
	payment *domain.Payment,
	placement *domain.Placement,
) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		// A transição condicional vem primeiro: se a campanha não está mais
		// em approved, nenhuma escrita acontece
		result, err := tx.ExecContext(ctx,
			`UPDATE `+adRequestTable+`
			 SET status = $1, updated_at = CURRENT_TIMESTAMP
			 WHERE id = $2 AND status = $3`,
			domain.AdRequestStatusActive,
			payment.AdRequestID,
			domain.AdRequestStatusApproved,
		)
		if err != nil {
			return fmt.Errorf("erro ao ativar campanha: %w", err)
		}
		if err := checkAffected(result); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO `+paymentTable+`
			 (id, ad_request_id, vendor_id, amount, payment_method, gateway_transaction_id,
			  status, gst_amount, platform_fee, net_amount, receipt_ref, payment_date)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, CURRENT_TIMESTAMP)`,
			payment.ID,
			payment.AdRequestID,
			payment.VendorID,
			payment.Amount,
			payment.PaymentMethod,
			payment.GatewayTransactionID,
			domain.PaymentStatusCompleted,
			payment.GSTAmount,
			payment.PlatformFee,
			payment.NetAmount,
			payment.ReceiptRef,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateTransaction
			}
			return fmt.Errorf("erro ao inserir pagamento: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO `+placementTable+`
			 (id, ad_request_id, placement_type, display_priority, start_date, end_date,
			  is_active, daily_impression_limit, last_impression_reset)
			 VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, CURRENT_TIMESTAMP)`,
			placement.ID,
			placement.AdRequestID,
			placement.PlacementType,
			placement.DisplayPriority,
			placement.StartDate,
			placement.EndDate,
			placement.DailyImpressionLimit,
		)
		if err != nil {
			return fmt.Errorf("erro ao criar placement: %w", err)
		}

		return nil
	})
}

func (r *paymentRepository) CreateAttempt(ctx context.Context, payment *domain.Payment) error {
	query, args, err := squirrel.
		Insert(paymentTable).
		Columns(
			"id",
			"ad_request_id",
			"vendor_id",
			"amount",
			"payment_method",
			"gateway_transaction_id",
			"status",
			"gst_amount",
			"platform_fee",
			"net_amount",
			"receipt_ref",
		).
		Values(
			payment.ID,
			payment.AdRequestID,
			payment.VendorID,
			payment.Amount,
			payment.PaymentMethod,
			payment.GatewayTransactionID,
			payment.Status,
			payment.GSTAmount,
			payment.PlatformFee,
			payment.NetAmount,
			payment.ReceiptRef,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("erro ao registrar tentativa de pagamento: %w", err)
	}

	return nil
}

func (r *paymentRepository) ListByVendor(ctx context.Context, vendorID string) ([]*domain.Payment, error) {
	query, args, err := squirrel.
		Select(paymentColumns...).
		From(paymentTable + " p").
		Where(squirrel.Eq{"p.vendor_id": vendorID}).
		OrderBy("p.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		payment := &domain.Payment{}
		err := rows.Scan(
			&payment.ID,
			&payment.AdRequestID,
			&payment.VendorID,
			&payment.Amount,
			&payment.PaymentMethod,
			&payment.GatewayTransactionID,
			&payment.Status,
			&payment.GSTAmount,
			&payment.PlatformFee,
			&payment.NetAmount,
			&payment.ReceiptRef,
			&payment.PaymentDate,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pagamento: %w", err)
		}
		payments = append(payments, payment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return payments, nil
}

// isUniqueViolation identifica violação de índice único do Postgres (23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
