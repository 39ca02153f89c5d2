package accounts

// DefaultTable returns the built-in equivalence table used when no CSV is
// configured: the most common accounts of the Spanish general chart of
// accounts (PGC 2007).
func DefaultTable() Table {
	return Table{
		"100": "Capital social",
		"112": "Reserva legal",
		"129": "Resultado del ejercicio",
		"170": "Deudas a largo plazo con entidades de crédito",
		"210": "Terrenos y bienes naturales",
		"211": "Construcciones",
		"213": "Maquinaria",
		"216": "Mobiliario",
		"217": "Equipos para procesos de información",
		"218": "Elementos de transporte",
		"281": "Amortización acumulada del inmovilizado material",
		"300": "Mercaderías",
		"400": "Proveedores",
		"410": "Acreedores por prestaciones de servicios",
		"430": "Clientes",
		"440": "Deudores",
		"465": "Remuneraciones pendientes de pago",
		"472": "Hacienda Pública, IVA soportado",
		"475": "Hacienda Pública, acreedora por conceptos fiscales",
		"476": "Organismos de la Seguridad Social, acreedores",
		"477": "Hacienda Pública, IVA repercutido",
		"520": "Deudas a corto plazo con entidades de crédito",
		"523": "Proveedores de inmovilizado a corto plazo",
		"570": "Caja, euros",
		"572": "Bancos e instituciones de crédito c/c vista, euros",
		"600": "Compras de mercaderías",
		"621": "Arrendamientos y cánones",
		"622": "Reparaciones y conservación",
		"623": "Servicios de profesionales independientes",
		"625": "Primas de seguros",
		"626": "Servicios bancarios y similares",
		"627": "Publicidad, propaganda y relaciones públicas",
		"628": "Suministros",
		"629": "Otros servicios",
		"640": "Sueldos y salarios",
		"642": "Seguridad Social a cargo de la empresa",
		"662": "Intereses de deudas",
		"681": "Amortización del inmovilizado material",
		"700": "Ventas de mercaderías",
		"705": "Prestaciones de servicios",
		"769": "Otros ingresos financieros",
	}
}
