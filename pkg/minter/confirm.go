package minter

import (
	"context"
	"time"

	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/pkg/errors"

	"github.com/code-payments/splmint/pkg/retry"
)

var (
	// Solana slots are ~400ms; poll at twice the slot rate.
	statusPollInterval = 200 * time.Millisecond

	// Give up after ~32 slots without a confirmation.
	statusPollLimit = uint(2 * 32)
)

var (
	// ErrSignatureNotFound indicates the cluster never observed the
	// submitted signature before polling gave up.
	ErrSignatureNotFound = errors.New("signature not found")

	errNotYetConfirmed = errors.New("confirmations not reached")
)

// waitForConfirmation polls the signature status until the cluster reports
// the transaction as confirmed or finalized.
func (m *Minter) waitForConfirmation(ctx context.Context, sig string) error {
	_, err := retry.Retry(
		func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			status, err := m.client.GetSignatureStatus(ctx, sig)
			if err != nil {
				return errors.Wrap(err, "error getting signature status")
			}
			if status == nil {
				return ErrSignatureNotFound
			}

			if status.Err != nil {
				return errors.Errorf("transaction failed: %v", status.Err)
			}

			// A nil confirmation count means the transaction is rooted.
			if status.Confirmations == nil {
				return nil
			}

			if status.ConfirmationStatus != nil {
				switch *status.ConfirmationStatus {
				case rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
					return nil
				}
			}

			return errNotYetConfirmed
		},
		retry.RetriableErrors(ErrSignatureNotFound, errNotYetConfirmed),
		retry.Limit(statusPollLimit),
		retry.Backoff(retry.Constant(statusPollInterval), statusPollInterval),
	)

	return err
}
