package windows

import (
	"testing"

	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahinbingol85/tez-online-appendix/dataset"
)

func TestNavigationTree_Roots(t *testing.T) {
	tree := NewNavigationTree()
	assert.Equal(t, []widget.TreeNodeID{"home", "appendices"}, tree.GetChildren(""))
}

func TestNavigationTree_Branches(t *testing.T) {
	tree := NewNavigationTree()

	assert.True(t, tree.IsBranch(""))
	assert.True(t, tree.IsBranch("appendices"))
	assert.False(t, tree.IsBranch("home"))
	for _, id := range tree.GetChildren("appendices") {
		assert.False(t, tree.IsBranch(id))
	}
}

func TestNavigationTree_AppendixLeaves(t *testing.T) {
	tree := NewNavigationTree()

	children := tree.GetChildren("appendices")
	require.Len(t, children, len(dataset.Appendices()))

	for i, a := range dataset.Appendices() {
		require.Equal(t, "appendix:"+a.File, children[i])

		node := tree.GetNode(children[i])
		require.NotNil(t, node)
		assert.Equal(t, NodeTypeAppendix, node.NodeType)
		assert.Equal(t, a.Title, node.Name)
		assert.Equal(t, a.File, node.Appendix.File)
	}
}

func TestNavigationTree_UnknownNode(t *testing.T) {
	tree := NewNavigationTree()

	assert.Nil(t, tree.GetNode("missing"))
	assert.Empty(t, tree.GetChildren("missing"))
	assert.False(t, tree.IsBranch("missing"))
}
