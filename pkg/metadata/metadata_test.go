package metadata

import (
	"context"
	"strings"
	"testing"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/near/borsh-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("My Token", "TOK", "https://gateway.irys.xyz/abc"))
	assert.NoError(t, Validate("My Token", "TOK", ""))

	assert.Error(t, Validate("", "TOK", ""))
	assert.Error(t, Validate("My Token", "", ""))
	assert.Error(t, Validate(strings.Repeat("a", MaxNameLength+1), "TOK", ""))
	assert.Error(t, Validate("My Token", strings.Repeat("a", MaxSymbolLength+1), ""))
	assert.Error(t, Validate("My Token", "TOK", strings.Repeat("a", MaxUriLength+1)))
}

func newTestMetadata() Metadata {
	updateAuthority := common.PublicKeyFromString("4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T")
	mint := common.PublicKeyFromString("So11111111111111111111111111111111111111112")

	return Metadata{
		Key:             4,
		UpdateAuthority: updateAuthority,
		Mint:            mint,
		Data: Data{
			Name:                 "Test Token" + strings.Repeat("\x00", 22),
			Symbol:               "TEST" + strings.Repeat("\x00", 6),
			Uri:                  "https://gateway.irys.xyz/abc" + strings.Repeat("\x00", 172),
			SellerFeeBasisPoints: 0,
		},
		PrimarySaleHappened: false,
		IsMutable:           true,
	}
}

func TestDeserialize(t *testing.T) {
	encoded, err := borsh.Serialize(newTestMetadata())
	require.NoError(t, err)

	decoded, err := Deserialize(encoded)
	require.NoError(t, err)

	assert.EqualValues(t, 4, decoded.Key)
	assert.Equal(t, "Test Token", decoded.Data.Name)
	assert.Equal(t, "TEST", decoded.Data.Symbol)
	assert.Equal(t, "https://gateway.irys.xyz/abc", decoded.Data.Uri)
	assert.True(t, decoded.IsMutable)
	assert.Nil(t, decoded.Data.Creators)
}

func TestDeserialize_Creators(t *testing.T) {
	creator := common.PublicKeyFromString("4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T")

	m := newTestMetadata()
	m.Data.Creators = &[]Creator{{
		Address:  creator,
		Verified: true,
		Share:    100,
	}}

	encoded, err := borsh.Serialize(m)
	require.NoError(t, err)

	decoded, err := Deserialize(encoded)
	require.NoError(t, err)
	require.NotNil(t, decoded.Data.Creators)
	require.Len(t, *decoded.Data.Creators, 1)
	assert.Equal(t, creator, (*decoded.Data.Creators)[0].Address)
	assert.EqualValues(t, 100, (*decoded.Data.Creators)[0].Share)
}

func TestDataV2_CarriesOptionalState(t *testing.T) {
	creator := common.PublicKeyFromString("4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T")
	collectionKey := common.PublicKeyFromString("So11111111111111111111111111111111111111112")

	m := newTestMetadata()
	m.Data.Name = "Test Token"
	m.Data.Symbol = "TEST"
	m.Data.Uri = "https://gateway.irys.xyz/abc"
	m.Data.SellerFeeBasisPoints = 250
	m.Data.Creators = &[]Creator{{Address: creator, Verified: true, Share: 100}}
	m.Collection = &Collection{Verified: true, Key: collectionKey}
	m.Uses = &Uses{UseMethod: 1, Remaining: 3, Total: 10}

	v2 := m.DataV2()

	assert.Equal(t, "Test Token", v2.Name)
	assert.Equal(t, "TEST", v2.Symbol)
	assert.Equal(t, "https://gateway.irys.xyz/abc", v2.Uri)
	assert.EqualValues(t, 250, v2.SellerFeeBasisPoints)

	require.NotNil(t, v2.Creators)
	require.Len(t, *v2.Creators, 1)
	assert.Equal(t, creator, (*v2.Creators)[0].Address)
	assert.True(t, (*v2.Creators)[0].Verified)
	assert.EqualValues(t, 100, (*v2.Creators)[0].Share)

	require.NotNil(t, v2.Collection)
	assert.Equal(t, collectionKey, v2.Collection.Key)
	assert.True(t, v2.Collection.Verified)

	require.NotNil(t, v2.Uses)
	assert.EqualValues(t, 1, v2.Uses.UseMethod)
	assert.EqualValues(t, 3, v2.Uses.Remaining)
	assert.EqualValues(t, 10, v2.Uses.Total)
}

func TestDataV2_NoOptionalState(t *testing.T) {
	m := newTestMetadata()
	v2 := m.DataV2()
	assert.Nil(t, v2.Creators)
	assert.Nil(t, v2.Collection)
	assert.Nil(t, v2.Uses)
}

func TestDeserialize_Garbage(t *testing.T) {
	_, err := Deserialize([]byte{0x01, 0x02})
	assert.Error(t, err)
}

type fakeAccountGetter struct {
	data []byte
	err  error
}

func (f *fakeAccountGetter) GetAccountInfo(_ context.Context, _ string) (client.AccountInfo, error) {
	if f.err != nil {
		return client.AccountInfo{}, f.err
	}
	return client.AccountInfo{Data: f.data, Lamports: 1}, nil
}

func TestFetch(t *testing.T) {
	encoded, err := borsh.Serialize(newTestMetadata())
	require.NoError(t, err)

	mint := common.PublicKeyFromString("So11111111111111111111111111111111111111112")

	decoded, err := Fetch(context.Background(), &fakeAccountGetter{data: encoded}, mint)
	require.NoError(t, err)
	assert.Equal(t, "Test Token", decoded.Data.Name)
}

func TestFetch_NotFound(t *testing.T) {
	mint := common.PublicKeyFromString("So11111111111111111111111111111111111111112")

	_, err := Fetch(context.Background(), &fakeAccountGetter{}, mint)
	assert.Equal(t, ErrNotFound, err)

	_, err = Fetch(context.Background(), &fakeAccountGetter{err: errors.New("rpc: account not found")}, mint)
	assert.Equal(t, ErrNotFound, err)

	_, err = Fetch(context.Background(), &fakeAccountGetter{err: errors.New("connection refused")}, mint)
	assert.Error(t, err)
	assert.NotEqual(t, ErrNotFound, err)
}
