// Package selectable implements the selectable collection of spec.md
// §4.8: a column of ciphertexts each carrying F ciphertext "flags",
// supporting a plain fold over the whole column and a privacy-preserving
// conditional fold driven by one flag.
package selectable

import "github.com/maloleroy/fhe-bpce/cryptosystem"

// Item is one column entry: a ciphertext value paired with F flag
// ciphertexts (spec.md §4.8).
type Item[CT any] struct {
	Ciphertext CT
	Flags      []CT
}

// Collection holds a sequence of selectable Items, written against
// cryptosystem.CryptoSystem only: this package never names a concrete
// scheme (spec.md §9 "the selectable collection is written against the
// interface only"). F (the number of flags per item) is fixed by the
// caller's usage, not enforced by the type itself.
//
// Push, Len and FoldAll work against any CryptoSystem. PushPlain,
// SetFlagPlain and FoldWhereFlag are free functions requiring the
// stronger cryptosystem.SelectableCS, since they need the scheme's
// designated ADD/MUL ops and zero/one plaintext identities: a scheme like
// ckks that never implements SelectableCS (spec.md §9, native ckks Mul is
// unsupported) can still build a FoldAll-only Collection, it just cannot
// be passed to those three functions.
type Collection[PT any, CT any, Op1 comparable, Op2 comparable, CS cryptosystem.CryptoSystem[PT, CT, Op1, Op2]] struct {
	cs    CS
	flags int
	items []Item[CT]
}

// NewCollection returns an empty Collection for scheme cs with flags
// flags per item.
func NewCollection[PT any, CT any, Op1 comparable, Op2 comparable, CS cryptosystem.CryptoSystem[PT, CT, Op1, Op2]](cs CS, flags int) *Collection[PT, CT, Op1, Op2, CS] {
	return &Collection[PT, CT, Op1, Op2, CS]{cs: cs, flags: flags}
}

// Push appends item as-is (spec.md §4.8 "push(item)").
func (c *Collection[PT, CT, Op1, Op2, CS]) Push(item Item[CT]) {
	c.items = append(c.items, item)
}

// Len returns the number of items in the collection.
func (c *Collection[PT, CT, Op1, Op2, CS]) Len() int { return len(c.items) }

// Flags returns the configured number of flags per item.
func (c *Collection[PT, CT, Op1, Op2, CS]) Flags() int { return c.flags }

// Item returns a copy of the i-th item.
func (c *Collection[PT, CT, Op1, Op2, CS]) Item(i int) Item[CT] { return c.items[i] }

// setFlag replaces the i-th item's flag slot, used by SetFlagPlain.
func (c *Collection[PT, CT, Op1, Op2, CS]) setFlag(i, index int, ct CT) {
	c.items[i].Flags[index] = ct
}

// FoldAll folds the whole column with op, starting from the first item's
// ciphertext and applying op against each subsequent item's ciphertext in
// order. Panics if the collection is empty (spec.md §4.8).
func (c *Collection[PT, CT, Op1, Op2, CS]) FoldAll(op Op2) CT {
	if len(c.items) == 0 {
		panic("selectable: FoldAll on an empty collection")
	}
	acc := c.items[0].Ciphertext
	for _, item := range c.items[1:] {
		acc = c.cs.Operate2(op, acc, item.Ciphertext)
	}
	return acc
}

// PushPlain encrypts value and appends an Item with every flag
// initialised to the scheme's "off" (additive identity) ciphertext
// (spec.md §4.8 "push_plain(value, cs)"). Requires a SelectableCS for its
// ZeroPlaintext identity.
func PushPlain[PT any, CT any, Op1 comparable, Op2 comparable, CS cryptosystem.SelectableCS[PT, CT, Op1, Op2]](c *Collection[PT, CT, Op1, Op2, CS], value PT) error {
	ct, err := c.cs.Cipher(value)
	if err != nil {
		return err
	}
	flags := make([]CT, c.flags)
	for i := range flags {
		off, err := c.cs.Cipher(c.cs.ZeroPlaintext())
		if err != nil {
			return err
		}
		flags[i] = off
	}
	c.items = append(c.items, Item[CT]{Ciphertext: ct, Flags: flags})
	return nil
}

// SetFlagPlain re-encrypts the chosen flag slot of item i to the scheme's
// identity ciphertext for the requested flag state (spec.md §4.8
// "set_flag_plain(i, index, on_or_off, cs)").
func SetFlagPlain[PT any, CT any, Op1 comparable, Op2 comparable, CS cryptosystem.SelectableCS[PT, CT, Op1, Op2]](c *Collection[PT, CT, Op1, Op2, CS], i, index int, on bool) error {
	pt := c.cs.ZeroPlaintext()
	if on {
		pt = c.cs.OnePlaintext()
	}
	ct, err := c.cs.Cipher(pt)
	if err != nil {
		return err
	}
	c.setFlag(i, index, ct)
	return nil
}

// FoldWhereFlag computes item.Ciphertext MUL flag[flagIndex] for every
// item, then folds all the products with the scheme's designated ADD
// (spec.md §4.8 "operate_many_where_flag"): items whose flag is "off"
// contribute the additive identity and items whose flag is "on"
// contribute the value itself, without the caller learning which is
// which. Panics if the collection is empty.
func FoldWhereFlag[PT any, CT any, Op1 comparable, Op2 comparable, CS cryptosystem.SelectableCS[PT, CT, Op1, Op2]](c *Collection[PT, CT, Op1, Op2, CS], flagIndex int) CT {
	if len(c.items) == 0 {
		panic("selectable: FoldWhereFlag on an empty collection")
	}
	add, mul := c.cs.AddAlphabet(), c.cs.MulAlphabet()

	acc := c.cs.Operate2(mul, c.items[0].Ciphertext, c.items[0].Flags[flagIndex])
	for _, item := range c.items[1:] {
		contribution := c.cs.Operate2(mul, item.Ciphertext, item.Flags[flagIndex])
		acc = c.cs.Operate2(add, acc, contribution)
	}
	return acc
}
