// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
)

func newStringTree() *avl.Tree[string] {
	return avl.New(strings.Compare)
}

func dump(t *testing.T, tree *avl.Tree[string]) {
	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer)
	t.Logf("depth: %d\n%s", depth, buffer.String())
}

func mustBeValid(t *testing.T, tree *avl.Tree[string], stage string) {
	if err := tree.Check(); nil != err {
		dump(t, tree)
		t.Fatalf("%s: inconsistent tree: %s", stage, err)
	}
}

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// build the whole list, delete a growing prefix, check, then delete
// the remainder and expect an empty tree
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := newStringTree()
		for _, key := range addList {
			tree.Insert(key)
		}
		mustBeValid(t, tree, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete: %q not found", key)
			}
		}
		mustBeValid(t, tree, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				if tree.Delete(key) {
					t.Fatalf("second delete of: %q succeeded", key)
				}
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete: %q not found", key)
			}
		}
		if !tree.IsEmpty() {
			dump(t, tree)
			t.Fatal("remainder: remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// compare the traversal and extremes against a sorted copy
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := newStringTree()
	for _, key := range addList {
		_, seen := unique[key]
		unique[key] = struct{}{}
		if added := tree.Insert(key); added == seen {
			t.Fatalf("insert: %q  added: %v  previously seen: %v", key, added, seen)
		}
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	assert.Equal(t, expected, tree.InOrder(), "in-order traversal")
	assert.Equal(t, len(expected), tree.Count(), "count")

	n := 0
	tree.Walk(func(value string) bool {
		if value != expected[n] {
			t.Fatalf("walk item: actual: %q  expected: %q", value, expected[n])
		}
		n += 1
		return true
	})
	if n != len(expected) {
		t.Fatalf("walk count: actual: %d  expected: %d", n, len(expected))
	}

	first, ok := tree.Min()
	if !ok || first != expected[0] {
		t.Fatalf("min: actual: %q  expected: %q", first, expected[0])
	}
	last, ok := tree.Max()
	if !ok || last != expected[len(expected)-1] {
		t.Fatalf("max: actual: %q  expected: %q", last, expected[len(expected)-1])
	}

	for _, key := range expected {
		tree.Delete(key)
	}
	if !tree.IsEmpty() {
		dump(t, tree)
		t.Fatalf("remaining nodes")
	}
}

func makeKey() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := newStringTree()
	present := make(map[string]struct{})
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key)
		present[key] = struct{}{}
	}
	mustBeValid(t, tree, "add")

	for _, key := range d {
		_, ok := present[key]
		if tree.Delete(key) != ok {
			t.Fatalf("delete: %q  expected found: %v", key, ok)
		}
		delete(present, key)
		mustBeValid(t, tree, "delete")
	}

	if len(present) != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(present))
	}
	for key := range present {
		if !tree.Contains(key) {
			t.Fatalf("missing key: %q", key)
		}
	}

	// add back a value outside the key range
	const testKey = "500"
	if !tree.Insert(testKey) {
		t.Fatalf("could not insert: %q", testKey)
	}
	mustBeValid(t, tree, "re-add")
	if !tree.Contains(testKey) {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if !tree.Delete(testKey) {
		t.Fatalf("could not delete test key: %q", testKey)
	}
	if tree.Contains(testKey) {
		t.Fatalf("test key not deleted: %q", testKey)
	}
	mustBeValid(t, tree, "final")
}

// insert n distinct values then delete them all, in ascending,
// descending and scattered orders
func TestRoundTrip(t *testing.T) {
	const n = 1000

	orders := map[string]func(i int) int{
		"ascending":  func(i int) int { return i },
		"descending": func(i int) int { return n - 1 - i },
		"scattered":  func(i int) int { return (i * 7919) % n },
	}

	for insertName, insertOrder := range orders {
		for deleteName, deleteOrder := range orders {
			tree := avl.New(func(a int, b int) int { return a - b })
			for i := 0; i < n; i += 1 {
				if !tree.Insert(insertOrder(i)) {
					t.Fatalf("%s: insert: %d failed", insertName, insertOrder(i))
				}
			}
			if n != tree.Count() {
				t.Fatalf("%s: count: %d  expected: %d", insertName, tree.Count(), n)
			}
			if err := tree.Check(); nil != err {
				t.Fatalf("%s: %s", insertName, err)
			}
			for i := 0; i < n; i += 1 {
				if !tree.Delete(deleteOrder(i)) {
					t.Fatalf("%s/%s: delete: %d not found", insertName, deleteName, deleteOrder(i))
				}
				if !tree.CheckBalance() || !tree.CheckCount() {
					t.Fatalf("%s/%s: invalid after delete: %d", insertName, deleteName, deleteOrder(i))
				}
			}
			assert.True(t, tree.IsEmpty(), "%s/%s: not empty", insertName, deleteName)
			assert.Equal(t, 0, tree.Count(), "%s/%s: count", insertName, deleteName)
			assert.Equal(t, 0, tree.Height(), "%s/%s: height", insertName, deleteName)
		}
	}
}

func heightBound(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}

func TestHeightBound(t *testing.T) {
	tree := avl.New(func(a int, b int) int { return a - b })
	for n := 1; n <= 4096; n += 1 {
		tree.Insert(n)
		if h := tree.Height(); h > heightBound(n) {
			t.Fatalf("height: %d  exceeds bound: %d  for count: %d", h, heightBound(n), n)
		}
	}

	tree.Clear()
	for n := 1; n <= 2000; n += 1 {
		tree.Insert((n * 7919) % 10007)
		if h := tree.Height(); h > heightBound(n) {
			t.Fatalf("height: %d  exceeds bound: %d  for count: %d", h, heightBound(n), n)
		}
	}
}

// contains must not disturb any observable state
func TestContainsIsIdempotent(t *testing.T) {
	tree := newStringTree()
	for i := 0; i < 100; i += 1 {
		tree.Insert(makeKey())
	}
	count := tree.Count()
	h := tree.Height()
	inOrder := tree.InOrder()
	preOrder := tree.PreOrder()

	for i := 0; i < 200; i += 1 {
		tree.Contains(makeKey())
	}
	for _, v := range inOrder {
		tree.Contains(v)
	}

	assert.Equal(t, count, tree.Count(), "count")
	assert.Equal(t, h, tree.Height(), "height")
	assert.Equal(t, inOrder, tree.InOrder(), "in-order")
	assert.Equal(t, preOrder, tree.PreOrder(), "pre-order")
}

func TestClear(t *testing.T) {
	tree := newStringTree()
	for _, v := range []string{"10", "20", "05"} {
		tree.Insert(v)
	}
	tree.Delete("20") // leave a reclaimed node in the pool

	tree.Clear()

	assert.True(t, tree.IsEmpty(), "empty")
	assert.Equal(t, 0, tree.Count(), "count")
	assert.Equal(t, 0, tree.Height(), "height")
	assert.False(t, tree.Contains("10"), "contains")
	assert.Equal(t, []string{}, tree.InOrder(), "in-order")

	// tree is still usable
	tree.Insert("99")
	assert.Equal(t, []string{"99"}, tree.InOrder(), "in-order after reuse")
	mustBeValid(t, tree, "reuse")
}

func TestStringComparator(t *testing.T) {
	tree := newStringTree()
	for _, v := range []string{"dog", "cat", "bird", "elephant"} {
		tree.Insert(v)
	}
	assert.Equal(t, 4, tree.Count())
	assert.Equal(t, []string{"bird", "cat", "dog", "elephant"}, tree.InOrder())
	assert.True(t, tree.Contains("cat"))

	assert.True(t, tree.Delete("cat"))
	assert.False(t, tree.Contains("cat"))
	assert.Equal(t, []string{"bird", "dog", "elephant"}, tree.InOrder())
}

func TestWalkStopsEarly(t *testing.T) {
	tree := avl.New(func(a int, b int) int { return a - b })
	for i := 1; i <= 20; i += 1 {
		tree.Insert(i)
	}
	seen := []int{}
	tree.Walk(func(v int) bool {
		seen = append(seen, v)
		return v < 5
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
}

func TestGetValuesAtDepth(t *testing.T) {
	tree := newStringTree()
	for _, key := range []string{"01", "02", "03", "04", "05", "06", "07"} {
		tree.Insert(key)
	}

	assert.Equal(t, []string{"04"}, tree.ValuesAtDepth(0), "depth 0")
	assert.Equal(t, []string{"02", "06"}, tree.ValuesAtDepth(1), "depth 1")
	assert.Equal(t, []string{"01", "03", "05", "07"}, tree.ValuesAtDepth(2), "depth 2")
	assert.Equal(t, 0, len(tree.ValuesAtDepth(3)), "depth 3")
	assert.Equal(t, 0, len(tree.ValuesAtDepth(-1)), "negative depth")
}

func TestPrint(t *testing.T) {
	tree := newStringTree()
	assert.Equal(t, 0, tree.Print(&bytes.Buffer{}), "empty depth")

	for _, key := range []string{"b", "a", "c"} {
		tree.Insert(key)
	}
	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer)

	expected := "" +
		"       /------+ c h:1 +0\n" +
		"|------+ b h:2 +0\n" +
		"       \\------+ a h:1 +0\n"
	assert.Equal(t, 2, depth, "depth")
	assert.Equal(t, expected, buffer.String(), "drawing")
}
