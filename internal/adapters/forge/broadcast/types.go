package broadcast

// File is a Foundry broadcast run file (broadcast/<script>/<chainId>/run-*.json)
type File struct {
	Chain        uint64        `json:"chain"`
	Transactions []Transaction `json:"transactions"`
	Receipts     []Receipt     `json:"receipts"`
	Timestamp    uint64        `json:"timestamp"`
	Commit       string        `json:"commit"`
}

// Transaction is one scripted transaction
type Transaction struct {
	Hash                string               `json:"hash"`
	TransactionType     string               `json:"transactionType"`
	ContractName        string               `json:"contractName"`
	ContractAddress     string               `json:"contractAddress"`
	Function            string               `json:"function"`
	Arguments           []any                `json:"arguments"`
	AdditionalContracts []AdditionalContract `json:"additionalContracts,omitempty"`
}

// AdditionalContract is a contract created by a transaction other than its direct target
type AdditionalContract struct {
	TransactionType string `json:"transactionType"`
	ContractName    string `json:"contractName"`
	ContractAddress string `json:"address"`
}

// Receipt is the mined receipt for a scripted transaction
type Receipt struct {
	TransactionHash string `json:"transactionHash"`
	BlockNumber     string `json:"blockNumber"`
	Status          string `json:"status"`
	ContractAddress string `json:"contractAddress"`
	Logs            []Log  `json:"logs"`
}

// Log is an event log from a receipt
type Log struct {
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data"`
}
