// Copyright 2026 Şahin Bingöl
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package windows

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/sahinbingol85/tez-online-appendix/dataset"
)

// TreeNodeType represents the type of node in the navigation tree
type TreeNodeType string

const (
	NodeTypeHome     TreeNodeType = "home"
	NodeTypeSection  TreeNodeType = "section"
	NodeTypeAppendix TreeNodeType = "appendix"
)

// TreeNode represents a node in the navigation tree
type TreeNode struct {
	ID       string           // Unique identifier
	NodeType TreeNodeType     // Type of node
	Name     string           // Display name
	Appendix dataset.Appendix // Catalog entry (appendix nodes only)
	Children []string         // Child node IDs
}

// NavigationTree holds the static view hierarchy: the Home leaf plus one
// appendix leaf per catalog entry under an Appendices branch. The tree is
// built once from the catalog and never changes afterwards.
type NavigationTree struct {
	nodes   map[string]*TreeNode
	rootIDs []string
}

// NewNavigationTree builds the tree from the dataset catalog.
func NewNavigationTree() *NavigationTree {
	nt := &NavigationTree{
		nodes:   make(map[string]*TreeNode),
		rootIDs: make([]string, 0),
	}

	home := &TreeNode{ID: "home", NodeType: NodeTypeHome, Name: "Home"}
	nt.nodes[home.ID] = home
	nt.rootIDs = append(nt.rootIDs, home.ID)

	section := &TreeNode{ID: "appendices", NodeType: NodeTypeSection, Name: "Appendices"}
	nt.nodes[section.ID] = section
	nt.rootIDs = append(nt.rootIDs, section.ID)

	for _, a := range dataset.Appendices() {
		node := &TreeNode{
			ID:       "appendix:" + a.File,
			NodeType: NodeTypeAppendix,
			Name:     a.Title,
			Appendix: a,
		}
		nt.nodes[node.ID] = node
		section.Children = append(section.Children, node.ID)
	}

	return nt
}

// GetChildren returns the child node IDs for a given parent node.
// Returns root nodes if nodeID is empty.
func (nt *NavigationTree) GetChildren(nodeID widget.TreeNodeID) []widget.TreeNodeID {
	if nodeID == "" {
		return nt.rootIDs
	}

	node, exists := nt.nodes[nodeID]
	if !exists {
		return []widget.TreeNodeID{}
	}

	return node.Children
}

// IsBranch returns true if the node can have children
func (nt *NavigationTree) IsBranch(nodeID widget.TreeNodeID) bool {
	// Root is always a branch
	if nodeID == "" {
		return true
	}

	node, exists := nt.nodes[nodeID]
	if !exists {
		return false
	}

	return node.NodeType == NodeTypeSection
}

// GetNode retrieves a node by ID
func (nt *NavigationTree) GetNode(nodeID widget.TreeNodeID) *TreeNode {
	return nt.nodes[nodeID]
}

// NewNodeTemplate returns the canvas object every tree row is built from.
func NewNodeTemplate() fyne.CanvasObject {
	return container.NewHBox(widget.NewIcon(theme.DocumentIcon()), widget.NewLabel("template"))
}

// UpdateNodeDisplay updates the visual representation of a tree node
func (nt *NavigationTree) UpdateNodeDisplay(nodeID widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
	node := nt.GetNode(nodeID)
	if node == nil {
		return
	}

	// Get the container and its children
	box, ok := obj.(*fyne.Container)
	if !ok || len(box.Objects) < 2 {
		return
	}

	// Update icon
	icon, ok := box.Objects[0].(*widget.Icon)
	if ok {
		switch node.NodeType {
		case NodeTypeHome:
			icon.SetResource(theme.HomeIcon())
		case NodeTypeSection:
			icon.SetResource(theme.FolderOpenIcon())
		case NodeTypeAppendix:
			icon.SetResource(theme.DocumentIcon())
		}
	}

	// Update label
	label, ok := box.Objects[1].(*widget.Label)
	if ok {
		label.SetText(node.Name)
	}
}
