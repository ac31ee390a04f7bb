package metadata

import (
	"context"
	"strings"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/near/borsh-go"
	"github.com/pkg/errors"
)

var (
	// ErrNotFound indicates no metadata account exists for the mint.
	ErrNotFound = errors.New("metadata account not found")
)

// Data is the mutable portion of the on-chain metadata account.
type Data struct {
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint16
	Creators             *[]Creator
}

type Creator struct {
	Address  common.PublicKey
	Verified bool
	Share    uint8
}

type Collection struct {
	Verified bool
	Key      common.PublicKey
}

type Uses struct {
	UseMethod uint8
	Remaining uint64
	Total     uint64
}

// Metadata is the borsh-encoded state of a token metadata program account.
type Metadata struct {
	Key                 uint8
	UpdateAuthority     common.PublicKey
	Mint                common.PublicKey
	Data                Data
	PrimarySaleHappened bool
	IsMutable           bool
	EditionNonce        *uint8
	TokenStandard       *uint8
	Collection          *Collection
	Uses                *Uses
}

// DataV2 converts the decoded state into the form the update instruction
// takes. Creators, collection and uses are carried over so an update leaves
// them intact on-chain.
func (m *Metadata) DataV2() token_metadata.DataV2 {
	v2 := token_metadata.DataV2{
		Name:                 m.Data.Name,
		Symbol:               m.Data.Symbol,
		Uri:                  m.Data.Uri,
		SellerFeeBasisPoints: m.Data.SellerFeeBasisPoints,
	}

	if m.Data.Creators != nil {
		creators := make([]token_metadata.Creator, 0, len(*m.Data.Creators))
		for _, creator := range *m.Data.Creators {
			creators = append(creators, token_metadata.Creator{
				Address:  creator.Address,
				Verified: creator.Verified,
				Share:    creator.Share,
			})
		}
		v2.Creators = &creators
	}

	if m.Collection != nil {
		v2.Collection = &token_metadata.Collection{
			Verified: m.Collection.Verified,
			Key:      m.Collection.Key,
		}
	}

	if m.Uses != nil {
		v2.Uses = &token_metadata.Uses{
			UseMethod: token_metadata.UseMethod(m.Uses.UseMethod),
			Remaining: m.Uses.Remaining,
			Total:     m.Uses.Total,
		}
	}

	return v2
}

// Deserialize decodes a metadata account's data. The on-chain strings are
// written at their maximum lengths and padded with NULs, which are stripped
// here.
func Deserialize(data []byte) (*Metadata, error) {
	var metadata Metadata
	if err := borsh.Deserialize(&metadata, data); err != nil {
		return nil, errors.Wrap(err, "error deserializing metadata account")
	}

	metadata.Data.Name = strings.TrimRight(metadata.Data.Name, "\x00")
	metadata.Data.Symbol = strings.TrimRight(metadata.Data.Symbol, "\x00")
	metadata.Data.Uri = strings.TrimRight(metadata.Data.Uri, "\x00")

	return &metadata, nil
}

type accountGetter interface {
	GetAccountInfo(ctx context.Context, addr string) (client.AccountInfo, error)
}

// Fetch loads and decodes the metadata account for a mint. ErrNotFound is
// returned when no account exists at the derived address.
func Fetch(ctx context.Context, getter accountGetter, mint common.PublicKey) (*Metadata, error) {
	addr, err := token_metadata.GetTokenMetaPubkey(mint)
	if err != nil {
		return nil, errors.Wrap(err, "error deriving metadata address")
	}

	info, err := getter.GetAccountInfo(ctx, addr.ToBase58())
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "error getting metadata account")
	}
	if len(info.Data) == 0 {
		return nil, ErrNotFound
	}

	return Deserialize(info.Data)
}
