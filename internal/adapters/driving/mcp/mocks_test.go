package mcp

import (
	"context"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
)

// mockTrioResolver is a mock implementation of driving.TrioResolver.
type mockTrioResolver struct {
	trio domain.Trio
	meta domain.Metadata
}

func (m *mockTrioResolver) Resolve(_ context.Context, substance string) domain.Trio {
	trio := m.trio
	trio.Substance = substance
	return trio
}

func (m *mockTrioResolver) Metadata(_ string) domain.Metadata {
	return m.meta
}

// mockBlockService is a mock implementation of driving.BlockService.
type mockBlockService struct {
	blocks []domain.DiagramBlock
}

func (m *mockBlockService) Discover(_, _ string) []domain.DiagramBlock {
	return m.blocks
}

// mockRenderService is a mock implementation of driving.RenderService.
type mockRenderService struct {
	results []domain.RenderResult
	result  domain.RenderResult
	err     error
}

func (m *mockRenderService) RenderNote(_ context.Context, _, _ string) ([]domain.RenderResult, error) {
	return m.results, m.err
}

func (m *mockRenderService) RenderBlock(_ context.Context, block domain.DiagramBlock) domain.RenderResult {
	result := m.result
	result.Block = block
	return result
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	aliases  domain.AliasTable
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) SetVaultPath(_ string) error {
	return m.err
}

func (m *mockSettingsService) SetCompilerURL(_ string) error {
	return m.err
}

func (m *mockSettingsService) SetRemote(_ bool, _ string) error {
	return m.err
}

func (m *mockSettingsService) Aliases() (domain.AliasTable, error) {
	return m.aliases, m.err
}

func (m *mockSettingsService) PutAlias(_ string, _ domain.AliasEntry) error {
	return m.err
}

func (m *mockSettingsService) RemoveAlias(_ string) error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
