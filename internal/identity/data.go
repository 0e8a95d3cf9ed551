package identity

// state is a birth jurisdiction as listed in the registry's state catalog.
type state struct {
	code string
	name string
}

var states = []state{
	{"AS", "Aguascalientes"},
	{"BC", "Baja California"},
	{"BS", "Baja California Sur"},
	{"CC", "Campeche"},
	{"CL", "Coahuila"},
	{"CM", "Colima"},
	{"CS", "Chiapas"},
	{"CH", "Chihuahua"},
	{"DF", "Ciudad de México"},
	{"DG", "Durango"},
	{"GT", "Guanajuato"},
	{"GR", "Guerrero"},
	{"HG", "Hidalgo"},
	{"JC", "Jalisco"},
	{"MC", "Estado de México"},
	{"MN", "Michoacán"},
	{"MS", "Morelos"},
	{"NT", "Nayarit"},
	{"NL", "Nuevo León"},
	{"OC", "Oaxaca"},
	{"PL", "Puebla"},
	{"QT", "Querétaro"},
	{"QR", "Quintana Roo"},
	{"SP", "San Luis Potosí"},
	{"SL", "Sinaloa"},
	{"SR", "Sonora"},
	{"TC", "Tabasco"},
	{"TS", "Tamaulipas"},
	{"TL", "Tlaxcala"},
	{"VZ", "Veracruz"},
	{"YN", "Yucatán"},
	{"ZS", "Zacatecas"},
	{"NE", "Nacido en el extranjero"},
}

var maleNames = []string{
	"José", "Juan", "Luis", "Carlos", "Jorge", "Miguel", "Alejandro", "Francisco",
	"Manuel", "Ricardo", "Raúl", "Eduardo", "Fernando", "Roberto", "Sergio", "Arturo",
	"Javier", "Daniel", "Héctor", "Óscar", "Andrés", "Ramón", "Jesús", "Martín",
	"Enrique", "Rubén", "Pedro", "Víctor", "Alberto", "Salvador", "Gerardo", "Ignacio",
	"José Luis", "Juan Carlos", "Luis Ángel", "Diego", "Emiliano", "Santiago", "Mateo", "Iker",
}

var femaleNames = []string{
	"María", "Guadalupe", "Juana", "Margarita", "Verónica", "Leticia", "Rosa", "Patricia",
	"Elizabeth", "Alejandra", "Gabriela", "Adriana", "Claudia", "Araceli", "Silvia", "Martha",
	"Teresa", "Laura", "Mónica", "Sofía", "Valentina", "Regina", "Ximena", "Camila",
	"Fernanda", "Daniela", "Lucía", "Andrea", "Beatriz", "Carmen", "Isabel", "Natalia",
	"María José", "Ana Sofía", "María Fernanda", "Renata", "Itzel", "Citlali", "Yolanda", "Noemí",
}

var surnames = []string{
	"Hernández", "García", "Martínez", "López", "González", "Pérez", "Rodríguez", "Sánchez",
	"Ramírez", "Cruz", "Flores", "Gómez", "Morales", "Vázquez", "Reyes", "Jiménez",
	"Torres", "Díaz", "Gutiérrez", "Ruiz", "Mendoza", "Aguilar", "Ortiz", "Moreno",
	"Castillo", "Romero", "Álvarez", "Méndez", "Chávez", "Rivera", "Juárez", "Ramos",
	"Domínguez", "Herrera", "Medina", "Castro", "Vargas", "Guzmán", "Velázquez", "Muñoz",
	"Rojas", "Contreras", "Salazar", "Luna", "Ortega", "Santiago", "Guerrero", "Estrada",
	"Bautista", "Cortés", "Soto", "Alvarado", "Espinoza", "Lara", "Ávila", "Ríos",
	"Cervantes", "Silva", "Delgado", "Vega", "Márquez", "Sandoval", "Carrillo", "León",
	"Mejía", "Solís", "Núñez", "Rosas", "Valdez", "Ibarra", "Campos", "Santos",
	"Camacho", "Navarro", "Peña", "Maldonado", "Rosales", "Acosta", "Miranda", "Trejo",
}
