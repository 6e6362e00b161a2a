package usecase

import (
	"github.com/inventario-app/inventario-api/internal/domain/entity"
	"github.com/inventario-app/inventario-api/internal/domain/repository"
)

// InventoryReportGenerator puerto de generación del reporte PDF del inventario.
// Lo implementa el generador maroto en infraestructura.
type InventoryReportGenerator interface {
	Generate(items []*entity.ItemDetail) ([]byte, error)
}

// ReportUseCase genera el reporte PDF del inventario completo.
type ReportUseCase struct {
	itemRepo  repository.ItemRepository
	generator InventoryReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(itemRepo repository.ItemRepository, generator InventoryReportGenerator) *ReportUseCase {
	return &ReportUseCase{itemRepo: itemRepo, generator: generator}
}

// InventoryPDF arma el reporte con todos los ítems. lowStockOnly limita el
// reporte a los ítems bajo su umbral.
func (uc *ReportUseCase) InventoryPDF(lowStockOnly bool) ([]byte, error) {
	items, err := uc.itemRepo.List(repository.ItemFilter{
		LowStockOnly: lowStockOnly,
		Limit:        10000,
	})
	if err != nil {
		return nil, err
	}
	return uc.generator.Generate(items)
}
