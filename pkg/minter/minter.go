// Package minter assembles and submits the transactions behind the token
// lifecycle: creating a mint with on-chain metadata, minting units into
// associated token accounts, and updating metadata after launch.
//
// Transaction encoding, signing, rent math and address derivation are all
// delegated to the Solana SDK; this package only owns the call sequencing.
package minter

import (
	"context"
	"strings"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/associated_token_account"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/program/token"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/splmint/pkg/metadata"
)

// Client is the subset of the Solana RPC client the minter depends on,
// satisfied by client.Client.
type Client interface {
	GetMinimumBalanceForRentExemption(ctx context.Context, dataLen uint64) (uint64, error)
	GetLatestBlockhash(ctx context.Context) (rpc.GetLatestBlockhashValue, error)
	GetAccountInfo(ctx context.Context, addr string) (client.AccountInfo, error)
	SendTransaction(ctx context.Context, tx types.Transaction) (string, error)
	GetSignatureStatus(ctx context.Context, sig string) (*rpc.SignatureStatus, error)
}

// Minter sequences token operations against a single fee payer, which also
// acts as mint and update authority.
type Minter struct {
	log      *logrus.Entry
	client   Client
	feePayer types.Account
}

// New returns a Minter backed by the RPC node at endpoint.
func New(endpoint string, feePayer types.Account) *Minter {
	return NewWithClient(client.NewClient(endpoint), feePayer)
}

// NewWithClient returns a Minter using the provided RPC client.
func NewWithClient(c Client, feePayer types.Account) *Minter {
	return &Minter{
		log:      logrus.StandardLogger().WithField("type", "minter"),
		client:   c,
		feePayer: feePayer,
	}
}

// FeePayer returns the public key of the configured fee payer.
func (m *Minter) FeePayer() common.PublicKey {
	return m.feePayer.PublicKey
}

type CreateTokenParams struct {
	Name   string
	Symbol string
	Uri    string

	Decimals uint8

	// InitialSupply is minted into the fee payer's associated token
	// account, in base units. Zero skips the mint-to instruction.
	InitialSupply uint64

	// MintKeypair optionally pins the new mint's address (for vanity
	// addresses). A fresh keypair is generated when nil.
	MintKeypair *types.Account
}

type CreateTokenResult struct {
	Mint            common.PublicKey
	TokenAccount    common.PublicKey
	MetadataAccount common.PublicKey
	Signature       string
}

// CreateToken creates a fungible token in a single transaction: the mint
// account, its metadata account, the fee payer's associated token account,
// and the initial supply. The instruction order is fixed; each instruction
// depends on state created by the previous one.
func (m *Minter) CreateToken(ctx context.Context, p CreateTokenParams) (*CreateTokenResult, error) {
	if err := metadata.Validate(p.Name, p.Symbol, p.Uri); err != nil {
		return nil, err
	}

	mint := types.NewAccount()
	if p.MintKeypair != nil {
		mint = *p.MintKeypair
	}

	metadataAccount, err := token_metadata.GetTokenMetaPubkey(mint.PublicKey)
	if err != nil {
		return nil, errors.Wrap(err, "error deriving metadata address")
	}

	tokenAccount, _, err := common.FindAssociatedTokenAddress(m.feePayer.PublicKey, mint.PublicKey)
	if err != nil {
		return nil, errors.Wrap(err, "error deriving associated token address")
	}

	rent, err := m.client.GetMinimumBalanceForRentExemption(ctx, token.MintAccountSize)
	if err != nil {
		return nil, errors.Wrap(err, "error getting rent-exempt minimum")
	}

	instructions := []types.Instruction{
		system.CreateAccount(system.CreateAccountParam{
			From:     m.feePayer.PublicKey,
			New:      mint.PublicKey,
			Owner:    common.TokenProgramID,
			Lamports: rent,
			Space:    token.MintAccountSize,
		}),
		token.InitializeMint(token.InitializeMintParam{
			Decimals:   p.Decimals,
			Mint:       mint.PublicKey,
			MintAuth:   m.feePayer.PublicKey,
			FreezeAuth: &m.feePayer.PublicKey,
		}),
		token_metadata.CreateMetadataAccountV3(token_metadata.CreateMetadataAccountV3Param{
			Metadata:                metadataAccount,
			Mint:                    mint.PublicKey,
			MintAuthority:           m.feePayer.PublicKey,
			UpdateAuthority:         m.feePayer.PublicKey,
			Payer:                   m.feePayer.PublicKey,
			UpdateAuthorityIsSigner: true,
			IsMutable:               true,
			Data: token_metadata.DataV2{
				Name:   p.Name,
				Symbol: p.Symbol,
				Uri:    p.Uri,
			},
		}),
		associated_token_account.CreateAssociatedTokenAccount(associated_token_account.CreateAssociatedTokenAccountParam{
			Funder:                 m.feePayer.PublicKey,
			Owner:                  m.feePayer.PublicKey,
			Mint:                   mint.PublicKey,
			AssociatedTokenAccount: tokenAccount,
		}),
	}

	if p.InitialSupply > 0 {
		instructions = append(instructions, token.MintTo(token.MintToParam{
			Mint:   mint.PublicKey,
			To:     tokenAccount,
			Auth:   m.feePayer.PublicKey,
			Amount: p.InitialSupply,
		}))
	}

	sig, err := m.submit(ctx, instructions, mint)
	if err != nil {
		return nil, err
	}

	m.log.
		WithField("mint", mint.PublicKey.ToBase58()).
		WithField("signature", sig).
		Info("token created")

	return &CreateTokenResult{
		Mint:            mint.PublicKey,
		TokenAccount:    tokenAccount,
		MetadataAccount: metadataAccount,
		Signature:       sig,
	}, nil
}

type MintUnitsParams struct {
	Mint common.PublicKey

	// Owner of the receiving associated token account. Defaults to the
	// fee payer when zero.
	Owner common.PublicKey

	// Amount in base units.
	Amount uint64
}

type MintUnitsResult struct {
	TokenAccount        common.PublicKey
	CreatedTokenAccount bool
	Signature           string
}

// MintUnits mints additional units into the owner's associated token
// account, creating the account first when it does not exist yet.
func (m *Minter) MintUnits(ctx context.Context, p MintUnitsParams) (*MintUnitsResult, error) {
	if p.Amount == 0 {
		return nil, errors.New("amount must be positive")
	}

	owner := p.Owner
	if owner == (common.PublicKey{}) {
		owner = m.feePayer.PublicKey
	}

	tokenAccount, _, err := common.FindAssociatedTokenAddress(owner, p.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "error deriving associated token address")
	}

	exists, err := m.accountExists(ctx, tokenAccount)
	if err != nil {
		return nil, errors.Wrap(err, "error checking associated token account")
	}

	var instructions []types.Instruction
	if !exists {
		instructions = append(instructions, associated_token_account.CreateAssociatedTokenAccount(associated_token_account.CreateAssociatedTokenAccountParam{
			Funder:                 m.feePayer.PublicKey,
			Owner:                  owner,
			Mint:                   p.Mint,
			AssociatedTokenAccount: tokenAccount,
		}))
	}

	instructions = append(instructions, token.MintTo(token.MintToParam{
		Mint:   p.Mint,
		To:     tokenAccount,
		Auth:   m.feePayer.PublicKey,
		Amount: p.Amount,
	}))

	sig, err := m.submit(ctx, instructions)
	if err != nil {
		return nil, err
	}

	m.log.
		WithField("mint", p.Mint.ToBase58()).
		WithField("token_account", tokenAccount.ToBase58()).
		WithField("amount", p.Amount).
		Info("units minted")

	return &MintUnitsResult{
		TokenAccount:        tokenAccount,
		CreatedTokenAccount: !exists,
		Signature:           sig,
	}, nil
}

type UpdateMetadataParams struct {
	Mint common.PublicKey

	// Unset fields keep their current on-chain values.
	Name   *string
	Symbol *string
	Uri    *string
}

type UpdateMetadataResult struct {
	MetadataAccount common.PublicKey
	Created         bool
	Signature       string
}

// UpdateMetadata updates the mint's metadata account, merging the provided
// fields with the current on-chain state. When no metadata account exists
// yet, one is created, in which case all three fields are required.
func (m *Minter) UpdateMetadata(ctx context.Context, p UpdateMetadataParams) (*UpdateMetadataResult, error) {
	metadataAccount, err := token_metadata.GetTokenMetaPubkey(p.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "error deriving metadata address")
	}

	current, err := metadata.Fetch(ctx, m.client, p.Mint)
	if err != nil && err != metadata.ErrNotFound {
		return nil, err
	}

	var instruction types.Instruction
	var created bool

	if current == nil {
		if p.Name == nil || p.Symbol == nil || p.Uri == nil {
			return nil, errors.New("name, symbol and uri are required to create metadata")
		}
		if err := metadata.Validate(*p.Name, *p.Symbol, *p.Uri); err != nil {
			return nil, err
		}

		created = true
		instruction = token_metadata.CreateMetadataAccountV3(token_metadata.CreateMetadataAccountV3Param{
			Metadata:                metadataAccount,
			Mint:                    p.Mint,
			MintAuthority:           m.feePayer.PublicKey,
			UpdateAuthority:         m.feePayer.PublicKey,
			Payer:                   m.feePayer.PublicKey,
			UpdateAuthorityIsSigner: true,
			IsMutable:               true,
			Data: token_metadata.DataV2{
				Name:   *p.Name,
				Symbol: *p.Symbol,
				Uri:    *p.Uri,
			},
		})
	} else {
		if !current.IsMutable {
			return nil, errors.New("metadata account is immutable")
		}

		data := current.DataV2()
		if p.Name != nil {
			data.Name = *p.Name
		}
		if p.Symbol != nil {
			data.Symbol = *p.Symbol
		}
		if p.Uri != nil {
			data.Uri = *p.Uri
		}

		if err := metadata.Validate(data.Name, data.Symbol, data.Uri); err != nil {
			return nil, err
		}

		instruction = token_metadata.UpdateMetadataAccountV2(token_metadata.UpdateMetadataAccountV2Param{
			MetadataAccount: metadataAccount,
			UpdateAuthority: m.feePayer.PublicKey,
			Data:            &data,
		})
	}

	sig, err := m.submit(ctx, []types.Instruction{instruction})
	if err != nil {
		return nil, err
	}

	m.log.
		WithField("mint", p.Mint.ToBase58()).
		WithField("signature", sig).
		Info("metadata updated")

	return &UpdateMetadataResult{
		MetadataAccount: metadataAccount,
		Created:         created,
		Signature:       sig,
	}, nil
}

// submit assembles a transaction from the instructions, signs it with the
// fee payer plus any extra signers, submits it, and waits for confirmation.
func (m *Minter) submit(ctx context.Context, instructions []types.Instruction, extraSigners ...types.Account) (string, error) {
	latest, err := m.client.GetLatestBlockhash(ctx)
	if err != nil {
		return "", errors.Wrap(err, "error getting latest blockhash")
	}

	signers := append([]types.Account{m.feePayer}, extraSigners...)

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Signers: signers,
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        m.feePayer.PublicKey,
			RecentBlockhash: latest.Blockhash,
			Instructions:    instructions,
		}),
	})
	if err != nil {
		return "", errors.Wrap(err, "error assembling transaction")
	}

	sig, err := m.client.SendTransaction(ctx, tx)
	if err != nil {
		return "", errors.Wrap(err, "error submitting transaction")
	}

	m.log.WithField("signature", sig).Debug("transaction submitted")

	if err := m.waitForConfirmation(ctx, sig); err != nil {
		return "", err
	}

	return sig, nil
}

func (m *Minter) accountExists(ctx context.Context, account common.PublicKey) (bool, error) {
	info, err := m.client.GetAccountInfo(ctx, account.ToBase58())
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return false, nil
		}
		return false, err
	}

	return info.Lamports > 0, nil
}
