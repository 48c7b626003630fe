package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
)

// transferTopic is keccak256("Transfer(address,address,uint256)")
const transferTopic = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"

// tokenContractName is the contract a zero-address mint identifies when the
// broadcast doesn't name it
const tokenContractName = "GrantToken"

// Parser handles parsing of Foundry broadcast files
type Parser struct {
	projectRoot string
}

// NewParser creates a new broadcast file parser
func NewParser(cfg *config.RuntimeConfig) *Parser {
	return &Parser{
		projectRoot: cfg.ProjectRoot,
	}
}

// ParseBroadcastFile parses a broadcast file
func (p *Parser) ParseBroadcastFile(file string) (*File, error) {
	data, err := os.ReadFile(file) //nolint:gosec // path built from project root
	if err != nil {
		return nil, fmt.Errorf("failed to read broadcast file: %w", err)
	}

	var broadcast File
	if err := json.Unmarshal(data, &broadcast); err != nil {
		return nil, fmt.Errorf("failed to parse broadcast file: %w", err)
	}

	return &broadcast, nil
}

// LatestBroadcastFile returns run-latest.json, or the newest run-*.json when
// run-latest.json is absent
func (p *Parser) LatestBroadcastFile(scriptName string, chainID uint64) (string, error) {
	latest := filepath.Join(p.getBroadcastPath(scriptName, chainID), "run-latest.json")
	if _, err := os.Stat(latest); err == nil {
		return latest, nil
	}

	files, err := p.GetAllBroadcastFiles(scriptName, chainID)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("broadcast file not found: %s: %w", latest, domain.ErrNotFound)
	}
	sort.Strings(files)
	return files[len(files)-1], nil
}

// ReadDeployments parses the latest broadcast for a script and chain and
// returns every contract it created, in broadcast order
func (p *Parser) ReadDeployments(_ context.Context, scriptName string, chainID uint64) ([]models.DeployedContract, string, error) {
	path, err := p.LatestBroadcastFile(scriptName, chainID)
	if err != nil {
		return nil, "", err
	}
	file, err := p.ParseBroadcastFile(path)
	if err != nil {
		return nil, path, err
	}
	return file.DeployedContracts(), path, nil
}

// getBroadcastPath returns the path to broadcast files for a script and chain
func (p *Parser) getBroadcastPath(scriptName string, chainID uint64) string {
	return filepath.Join(p.projectRoot, "broadcast", scriptName, fmt.Sprintf("%d", chainID))
}

// GetAllBroadcastFiles returns all broadcast files for a given script
func (p *Parser) GetAllBroadcastFiles(scriptName string, chainID uint64) ([]string, error) {
	broadcastPath := p.getBroadcastPath(scriptName, chainID)

	if _, err := os.Stat(broadcastPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("broadcast directory not found: %s: %w", broadcastPath, domain.ErrNotFound)
	}

	files, err := filepath.Glob(filepath.Join(broadcastPath, "run-*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list broadcast files: %w", err)
	}

	return files, nil
}

// DeployedContracts returns the named contract creations in the file. When no
// GrantToken creation is named, the first token minting from the zero address
// is taken as the token.
func (b *File) DeployedContracts() []models.DeployedContract {
	var out []models.DeployedContract
	for _, tx := range b.Transactions {
		if tx.ContractName != "" && common.IsHexAddress(tx.ContractAddress) && isCreate(tx.TransactionType) {
			out = append(out, models.DeployedContract{
				Name:    tx.ContractName,
				Address: common.HexToAddress(tx.ContractAddress),
				TxHash:  common.HexToHash(tx.Hash),
			})
		}
		for _, extra := range tx.AdditionalContracts {
			if extra.ContractName == "" || !common.IsHexAddress(extra.ContractAddress) {
				continue
			}
			out = append(out, models.DeployedContract{
				Name:    extra.ContractName,
				Address: common.HexToAddress(extra.ContractAddress),
				TxHash:  common.HexToHash(tx.Hash),
			})
		}
	}

	for _, c := range out {
		if c.Name == tokenContractName {
			return out
		}
	}
	if token, ok := b.mintedToken(); ok {
		out = append(out, token)
	}
	return out
}

// mintedToken finds the first Transfer log whose from topic is the zero address
func (b *File) mintedToken() (models.DeployedContract, bool) {
	zero := common.Hash{}.Hex()
	for _, receipt := range b.Receipts {
		for _, log := range receipt.Logs {
			if len(log.Topics) < 2 || !strings.EqualFold(log.Topics[0], transferTopic) {
				continue
			}
			if !strings.EqualFold(log.Topics[1], zero) || !common.IsHexAddress(log.Address) {
				continue
			}
			return models.DeployedContract{
				Name:    tokenContractName,
				Address: common.HexToAddress(log.Address),
				TxHash:  common.HexToHash(receipt.TransactionHash),
			}, true
		}
	}
	return models.DeployedContract{}, false
}

func isCreate(txType string) bool {
	// Older broadcasts omit the type on creations
	return txType == "" || txType == "CREATE" || txType == "CREATE2"
}

var _ usecase.BroadcastReader = (*Parser)(nil)
