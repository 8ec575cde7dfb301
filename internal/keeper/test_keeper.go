package keeper

import "context"

var _ Keeper = (*TestKeeper)(nil)

// TestKeeper is an in-memory keeper, used in tests instead of the
// file / redis backed ones.
type TestKeeper struct {
	Snapshot []byte
	LoadErr  error
	SaveErr  error
	Saves    int
}

func NewTestKeeper() *TestKeeper {
	return &TestKeeper{}
}

func (k *TestKeeper) Load(_ context.Context) ([]byte, error) {
	if k.LoadErr != nil {
		return nil, k.LoadErr
	}
	return k.Snapshot, nil
}

func (k *TestKeeper) Save(_ context.Context, snapshot []byte) error {
	if k.SaveErr != nil {
		return k.SaveErr
	}
	k.Snapshot = snapshot
	k.Saves++
	return nil
}
