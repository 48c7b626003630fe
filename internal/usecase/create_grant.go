package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
)

const erc20TransferABI = `[{"type":"function","name":"transfer","stateMutability":"nonpayable",
	"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],
	"outputs":[{"name":"","type":"bool"}]}]`

var erc20ABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(erc20TransferABI))
	if err != nil {
		panic(err)
	}
	return parsed
}()

// CreateGrantParams contains the user's grant request
type CreateGrantParams struct {
	Kind        models.GrantKind
	Recipient   string
	Token       string // ERC20 only
	Amount      string // human units, e.g. "1.5"
	Decimals    uint8  // ERC20 only
	Description string
}

// CreateGrantResult contains the submitted proposal
type CreateGrantResult struct {
	Actions models.ProposalActions
	Outcome models.TransactionOutcome
}

// CreateGrant is the use case for proposing a treasury grant
type CreateGrant struct {
	config   *config.RuntimeConfig
	writer   GovernorWriter
	watcher  TransactionWatcher
	accounts AccountProvider
	sink     ProgressSink
	log      *slog.Logger
}

// NewCreateGrant creates a new CreateGrant use case
func NewCreateGrant(
	cfg *config.RuntimeConfig,
	writer GovernorWriter,
	watcher TransactionWatcher,
	accounts AccountProvider,
	sink ProgressSink,
	log *slog.Logger,
) *CreateGrant {
	return &CreateGrant{
		config:   cfg,
		writer:   writer,
		watcher:  watcher,
		accounts: accounts,
		sink:     sink,
		log:      log,
	}
}

// Run validates the grant, submits propose() and waits for it to be mined
func (uc *CreateGrant) Run(ctx context.Context, params CreateGrantParams) (*CreateGrantResult, error) {
	actions, err := BuildGrantActions(params)
	if err != nil {
		return nil, err
	}
	if _, ok := uc.accounts.CurrentAccount(); !ok {
		return nil, domain.ErrNotConnected
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Message: "Submitting proposal",
		Spinner: true,
	})

	hash, err := uc.writer.Propose(ctx, *actions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmissionRejected, err)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "confirming",
		Message: fmt.Sprintf("Waiting for %s", hash.Hex()),
		Spinner: true,
	})

	timeout := uc.config.ConfirmationTimeout
	if timeout <= 0 {
		timeout = DefaultConfirmationTimeout
	}
	interval := uc.config.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	conf, err := WaitForConfirmation(ctx, uc.watcher, hash, interval, timeout, uc.log)
	if err != nil {
		return nil, err
	}
	if conf.Reverted {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransactionReverted, hash.Hex())
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Message: "Proposal submitted",
	})

	return &CreateGrantResult{
		Actions: *actions,
		Outcome: models.TransactionOutcome{
			TxHash:      hash,
			BlockNumber: conf.BlockNumber,
		},
	}, nil
}

// BuildGrantActions turns a grant request into propose() arguments.
// ETH grants pay the recipient directly; ERC20 grants call transfer on the token.
func BuildGrantActions(params CreateGrantParams) (*models.ProposalActions, error) {
	description := strings.TrimSpace(params.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidGrant)
	}
	recipient, err := grantAddress("recipient", params.Recipient)
	if err != nil {
		return nil, err
	}

	switch params.Kind {
	case models.GrantKindETH:
		amount, err := parseGrantAmount(params.Amount, models.EtherDecimals)
		if err != nil {
			return nil, err
		}
		return &models.ProposalActions{
			Targets:     []common.Address{recipient},
			Values:      []*big.Int{amount},
			Calldatas:   [][]byte{{}},
			Description: models.ETHGrantPrefix + description,
		}, nil

	case models.GrantKindERC20:
		token, err := grantAddress("token", params.Token)
		if err != nil {
			return nil, err
		}
		amount, err := parseGrantAmount(params.Amount, params.Decimals)
		if err != nil {
			return nil, err
		}
		calldata, err := EncodeTransfer(recipient, amount)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidGrant, err)
		}
		return &models.ProposalActions{
			Targets:     []common.Address{token},
			Values:      []*big.Int{new(big.Int)},
			Calldatas:   [][]byte{calldata},
			Description: models.ERC20GrantPrefix + description,
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown grant kind %q", domain.ErrInvalidGrant, params.Kind)
	}
}

// EncodeTransfer returns calldata for ERC20 transfer(to, amount)
func EncodeTransfer(to common.Address, amount *big.Int) ([]byte, error) {
	if amount == nil || amount.Sign() < 0 || amount.Cmp(math.MaxBig256) > 0 {
		return nil, fmt.Errorf("transfer amount %v does not fit uint256", amount)
	}
	data, err := erc20ABI.Pack("transfer", to, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transfer: %w", err)
	}
	return data, nil
}

// grantAddress parses a grant address; the zero address is never a valid payee or token
func grantAddress(field, raw string) (common.Address, error) {
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%w: %s %q: %w", domain.ErrInvalidGrant, field, raw, domain.ErrInvalidAddress)
	}
	addr := common.HexToAddress(raw)
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: %s is the zero address: %w", domain.ErrInvalidGrant, field, domain.ErrInvalidAddress)
	}
	return addr, nil
}

func parseGrantAmount(raw string, decimals uint8) (*big.Int, error) {
	amount, err := models.ParseUnits(raw, decimals)
	if err != nil {
		return nil, fmt.Errorf("%w: amount: %w", domain.ErrInvalidGrant, err)
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidGrant)
	}
	if amount.Cmp(math.MaxBig256) > 0 {
		return nil, fmt.Errorf("%w: amount exceeds uint256", domain.ErrInvalidGrant)
	}
	return amount, nil
}
