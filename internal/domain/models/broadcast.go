package models

import "github.com/ethereum/go-ethereum/common"

// DeployedContract is a contract creation found in a deployment broadcast
type DeployedContract struct {
	Name    string         `json:"name"`
	Address common.Address `json:"address"`
	TxHash  common.Hash    `json:"txHash"`
}
