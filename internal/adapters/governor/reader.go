package governor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/grantdao/grantdao-cli/internal/adapters/abi/bindings"
	"github.com/grantdao/grantdao-cli/internal/adapters/blockchain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
)

// ReaderAdapter implements GovernorReader with eth_call against the GrantGovernor
type ReaderAdapter struct {
	conn     *blockchain.Connection
	address  common.Address
	governor *bindings.GrantGovernor
}

// NewReaderAdapter creates a new governor reader adapter
func NewReaderAdapter(cfg *config.RuntimeConfig, conn *blockchain.Connection) *ReaderAdapter {
	return &ReaderAdapter{
		conn:     conn,
		address:  cfg.Contracts.Governor,
		governor: bindings.NewGrantGovernor(),
	}
}

func (r *ReaderAdapter) instance(ctx context.Context) (*bind.BoundContract, error) {
	if r.address == (common.Address{}) {
		return nil, errMissingAddress("governor")
	}
	client, err := r.conn.Client(ctx)
	if err != nil {
		return nil, err
	}
	return r.governor.Instance(client, r.address), nil
}

// ReadProposalCount calls proposalCount()
func (r *ReaderAdapter) ReadProposalCount(ctx context.Context) (*big.Int, error) {
	c, err := r.instance(ctx)
	if err != nil {
		return nil, err
	}
	return bind.Call(c, &bind.CallOpts{Context: ctx}, r.governor.PackProposalCount(), r.governor.UnpackProposalCount)
}

// ReadProposalCore calls proposals(id)
func (r *ReaderAdapter) ReadProposalCore(ctx context.Context, id *big.Int) (*models.ProposalCore, error) {
	c, err := r.instance(ctx)
	if err != nil {
		return nil, err
	}
	out, err := bind.Call(c, &bind.CallOpts{Context: ctx}, r.governor.PackProposals(id), r.governor.UnpackProposals)
	if err != nil {
		return nil, err
	}
	return &models.ProposalCore{
		Proposer:    out.Proposer,
		Targets:     out.Targets,
		Values:      out.Values,
		Calldatas:   out.Calldatas,
		Description: out.Description,
		StartBlock:  out.StartBlock,
		EndBlock:    out.EndBlock,
	}, nil
}

// ReadProposalState calls state(id)
func (r *ReaderAdapter) ReadProposalState(ctx context.Context, id *big.Int) (models.ProposalState, error) {
	c, err := r.instance(ctx)
	if err != nil {
		return 0, err
	}
	state, err := bind.Call(c, &bind.CallOpts{Context: ctx}, r.governor.PackState(id), r.governor.UnpackState)
	if err != nil {
		return 0, err
	}
	return models.ProposalState(state), nil
}

// ReadProposalVotes calls proposalVotes(id)
func (r *ReaderAdapter) ReadProposalVotes(ctx context.Context, id *big.Int) (*models.VoteTally, error) {
	c, err := r.instance(ctx)
	if err != nil {
		return nil, err
	}
	out, err := bind.Call(c, &bind.CallOpts{Context: ctx}, r.governor.PackProposalVotes(id), r.governor.UnpackProposalVotes)
	if err != nil {
		return nil, err
	}
	return &models.VoteTally{
		For:     out.ForVotes,
		Against: out.AgainstVotes,
		Abstain: out.AbstainVotes,
	}, nil
}

// ReadHasVoted calls hasVoted(id, voter)
func (r *ReaderAdapter) ReadHasVoted(ctx context.Context, id *big.Int, voter common.Address) (bool, error) {
	c, err := r.instance(ctx)
	if err != nil {
		return false, err
	}
	return bind.Call(c, &bind.CallOpts{Context: ctx}, r.governor.PackHasVoted(id, voter), r.governor.UnpackHasVoted)
}

func errMissingAddress(name string) error {
	return fmt.Errorf("%s address not configured (set it in grantdao.toml or run `grantdao sync`)", name)
}

var _ usecase.GovernorReader = (*ReaderAdapter)(nil)
