// Package seed holds the canonical product catalog. It is loaded once into
// whichever backend the server runs against; products are never mutated after
// that.
package seed

import (
	"github.com/steelcraft/catalog-server/internal/model"
)

func Products() []model.CreateProductParams {
	return []model.CreateProductParams{
		// Industrial equipment
		{Name: "Heavy Duty Compressor", Category: model.CategoryIndustrial, Description: "Professional grade compressor for heavy industrial applications", Weight: "450 kg", ImageURL: "https://images.unsplash.com/photo-1565193566173-7a0ee3dbe261?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Industrial Generator", Category: model.CategoryIndustrial, Description: "High capacity power generation unit for continuous operation", Weight: "850 kg", ImageURL: "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Pneumatic Valve System", Category: model.CategoryIndustrial, Description: "Precision control valve for automated industrial processes", Weight: "25 kg", ImageURL: "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Air Filtration System", Category: model.CategoryIndustrial, Description: "High efficiency particulate air filtration for clean environments", Weight: "75 kg", ImageURL: "https://images.unsplash.com/photo-1565193566173-7a0ee3dbe261?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Industrial Scales", Category: model.CategoryIndustrial, Description: "Heavy duty platform scales for accurate weight measurement", Weight: "120 kg", ImageURL: "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Pump Control System", Category: model.CategoryIndustrial, Description: "Automated pump control with variable frequency drive", Weight: "45 kg", ImageURL: "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Industrial Fans", Category: model.CategoryIndustrial, Description: "High volume industrial exhaust fans for ventilation systems", Weight: "85 kg", ImageURL: "https://images.unsplash.com/photo-1587293852726-70cdb56c2866?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Motor Drive Units", Category: model.CategoryIndustrial, Description: "Variable frequency drives for motor speed control", Weight: "18 kg", ImageURL: "https://images.unsplash.com/photo-1586864387967-d02ef85d93e8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},

		// Machinery
		{Name: "Hydraulic Press", Category: model.CategoryMachinery, Description: "High pressure hydraulic press for metal forming operations", Weight: "1200 kg", ImageURL: "https://images.unsplash.com/photo-1587293852726-70cdb56c2866?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Conveyor Belt System", Category: model.CategoryMachinery, Description: "Modular conveyor system for material handling and transportation", Weight: "320 kg", ImageURL: "https://images.unsplash.com/photo-1586864387967-d02ef85d93e8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "CNC Milling Machine", Category: model.CategoryMachinery, Description: "Precision computer-controlled milling machine for accurate machining", Weight: "2100 kg", ImageURL: "https://images.unsplash.com/photo-1565193566173-7a0ee3dbe261?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Robotic Assembly Arm", Category: model.CategoryMachinery, Description: "6-axis robotic arm for automated assembly and handling tasks", Weight: "180 kg", ImageURL: "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Industrial Lathe", Category: model.CategoryMachinery, Description: "Heavy duty turning lathe for precision metalworking operations", Weight: "1800 kg", ImageURL: "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Packaging Machine", Category: model.CategoryMachinery, Description: "Automated packaging system for high-volume production lines", Weight: "650 kg", ImageURL: "https://images.unsplash.com/photo-1587293852726-70cdb56c2866?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Welding Station", Category: model.CategoryMachinery, Description: "Professional welding workstation with fume extraction system", Weight: "280 kg", ImageURL: "https://images.unsplash.com/photo-1586864387967-d02ef85d93e8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Grinding Machine", Category: model.CategoryMachinery, Description: "Precision surface grinding machine for finishing operations", Weight: "950 kg", ImageURL: "https://images.unsplash.com/photo-1565193566173-7a0ee3dbe261?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Press Brake", Category: model.CategoryMachinery, Description: "Hydraulic press brake for sheet metal bending operations", Weight: "1650 kg", ImageURL: "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Injection Molding Machine", Category: model.CategoryMachinery, Description: "Plastic injection molding machine for production manufacturing", Weight: "3200 kg", ImageURL: "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Hoisting Equipment", Category: model.CategoryMachinery, Description: "Electric chain hoist for heavy lifting applications", Weight: "45 kg", ImageURL: "https://images.unsplash.com/photo-1587293852726-70cdb56c2866?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Drill Press", Category: model.CategoryMachinery, Description: "Heavy duty floor standing drill press for precision drilling", Weight: "185 kg", ImageURL: "https://images.unsplash.com/photo-1586864387967-d02ef85d93e8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},

		// Tools
		{Name: "Professional Tool Set", Category: model.CategoryTools, Description: "Comprehensive tool kit for industrial maintenance and repair", Weight: "15 kg", ImageURL: "https://images.unsplash.com/photo-1572981779307-38b7917bb9a8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Precision Measuring Tools", Category: model.CategoryTools, Description: "High precision calipers, micrometers, and measuring instruments", Weight: "3 kg", ImageURL: "https://images.unsplash.com/photo-1581092918484-8313de2c9473?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Heavy Duty Wrench Set", Category: model.CategoryTools, Description: "Industrial grade wrench set for heavy machinery maintenance", Weight: "8 kg", ImageURL: "https://images.unsplash.com/photo-1572981779307-38b7917bb9a8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Diamond Cutting Discs", Category: model.CategoryTools, Description: "Professional diamond cutting discs for various materials", Weight: "2 kg", ImageURL: "https://images.unsplash.com/photo-1581092918484-8313de2c9473?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Torque Wrench Set", Category: model.CategoryTools, Description: "Precision torque wrenches for accurate bolt tightening", Weight: "5 kg", ImageURL: "https://images.unsplash.com/photo-1572981779307-38b7917bb9a8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Safety Equipment Kit", Category: model.CategoryTools, Description: "Complete safety equipment for industrial work environments", Weight: "12 kg", ImageURL: "https://images.unsplash.com/photo-1581092918484-8313de2c9473?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Electrical Testing Tools", Category: model.CategoryTools, Description: "Professional electrical testing and measurement tools", Weight: "6 kg", ImageURL: "https://images.unsplash.com/photo-1572981779307-38b7917bb9a8?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
		{Name: "Hydraulic Lifting Tools", Category: model.CategoryTools, Description: "Portable hydraulic lifting and spreading tools", Weight: "25 kg", ImageURL: "https://images.unsplash.com/photo-1581092918484-8313de2c9473?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300"},
	}
}
