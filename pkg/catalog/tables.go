package catalog

// Table descriptors for the WolfPub schema.
var (
	Distributors = Table{
		Name:      "distributors",
		SerialKey: "distributor_id",
		Columns: []Column{
			{Name: "distributor_id", Type: "serial", Constraint: "primary key"},
			{Name: "name", Type: "varchar(200)", Constraint: "not null"},
			{Name: "distributor_type", Type: "varchar(20)"},
			{Name: "address", Type: "varchar(100)", Constraint: "not null"},
			{Name: "city", Type: "varchar(20)", Constraint: "not null"},
			{Name: "phone_number", Type: "bigint"},
			{Name: "contact_person", Type: "varchar(100)"},
			{Name: "is_active", Type: "boolean", Constraint: "default true"},
		},
	}

	Accounts = Table{
		Name:      "accounts",
		SerialKey: "account_id",
		Columns: []Column{
			{Name: "account_id", Type: "serial", Constraint: "primary key"},
			{Name: "distributor_id", Type: "integer", Constraint: "not null references distributors"},
			{Name: "house_id", Type: "integer", Constraint: "default 1"},
			{Name: "balance", Type: "numeric(8, 2)", Constraint: "not null"},
			{Name: "contact_email", Type: "varchar(100)", Constraint: "not null"},
			{Name: "periodicity", Type: "varchar(20)", Constraint: "not null"},
			{Name: "is_active", Type: "boolean", Constraint: "default true"},
		},
	}

	AccountHousesInfo = Table{
		Name: "account_houses_info",
		Columns: []Column{
			{Name: "account_id", Type: "integer", Constraint: "not null"},
			{Name: "house_id", Type: "integer", Constraint: "default 1"},
		},
	}

	AccountBills = Table{
		Name:      "account_bills",
		SerialKey: "bill_id",
		Columns: []Column{
			{Name: "bill_id", Type: "serial", Constraint: "primary key"},
			{Name: "account_id", Type: "integer", Constraint: "not null"},
			{Name: "amount", Type: "numeric(8, 2)", Constraint: "not null"},
			{Name: "bill_date", Type: "date", Constraint: "not null"},
		},
	}

	AccountPayments = Table{
		Name:      "account_payments",
		SerialKey: "payment_id",
		Columns: []Column{
			{Name: "payment_id", Type: "serial", Constraint: "primary key"},
			{Name: "account_id", Type: "integer", Constraint: "not null"},
			{Name: "amount", Type: "numeric(8, 2)", Constraint: "not null"},
			{Name: "payment_date", Type: "date", Constraint: "not null"},
		},
	}

	Employees = Table{
		Name: "employees",
		Columns: []Column{
			{Name: "emp_id", Type: "varchar(6)", Constraint: "primary key"},
			{Name: "ssn", Type: "varchar(12)", Constraint: "not null unique"},
			{Name: "name", Type: "varchar(100)", Constraint: "not null"},
			{Name: "gender", Type: "varchar(1)"},
			{Name: "age", Type: "integer"},
			{Name: "phone_number", Type: "bigint", Constraint: "not null"},
			{Name: "job_title", Type: "varchar(20)", Constraint: "not null"},
		},
	}

	Authors = Table{
		Name: "authors",
		Columns: []Column{
			{Name: "emp_id", Type: "varchar(6)", Constraint: "not null"},
			{Name: "type", Type: "varchar(20)", Constraint: "default 'staff'"},
		},
	}

	Editors = Table{
		Name: "editors",
		Columns: []Column{
			{Name: "emp_id", Type: "varchar(6)", Constraint: "not null"},
			{Name: "type", Type: "varchar(20)", Constraint: "default 'staff'"},
		},
	}

	StaffPayments = Table{
		Name: "staff_payments",
		Columns: []Column{
			{Name: "emp_id", Type: "varchar(6)", Constraint: "not null"},
			{Name: "payment_freq", Type: "varchar(25)", Constraint: "not null"},
		},
	}

	SalaryPayments = Table{
		Name:      "salary_payments",
		SerialKey: "transaction_id",
		Columns: []Column{
			{Name: "transaction_id", Type: "serial", Constraint: "primary key"},
			{Name: "emp_id", Type: "varchar(6)", Constraint: "not null"},
			{Name: "house_id", Type: "integer", Constraint: "default 1"},
			{Name: "amount", Type: "numeric(8, 2)", Constraint: "not null"},
			{Name: "send_date", Type: "date", Constraint: "not null"},
			{Name: "received_date", Type: "date"},
		},
	}

	Publications = Table{
		Name:      "publications",
		SerialKey: "publication_id",
		Columns: []Column{
			{Name: "publication_id", Type: "serial", Constraint: "primary key"},
			{Name: "title", Type: "varchar(100)", Constraint: "not null"},
			{Name: "topic", Type: "varchar(20)"},
			{Name: "price", Type: "numeric(6, 2)", Constraint: "not null"},
			{Name: "publication_date", Type: "date", Constraint: "not null"},
		},
	}

	Books = Table{
		Name: "books",
		Columns: []Column{
			{Name: "publication_id", Type: "integer", Constraint: "not null references publications"},
			{Name: "isbn", Type: "varchar(17)", Constraint: "not null unique"},
			{Name: "creation_date", Type: "date", Constraint: "not null"},
			{Name: "edition", Type: "integer", Constraint: "not null"},
			{Name: "book_id", Type: "integer", Constraint: "not null"},
			{Name: "is_available", Type: "boolean", Constraint: "default true"},
		},
	}

	Chapters = Table{
		Name: "chapters",
		Columns: []Column{
			{Name: "chapter_id", Type: "integer", Constraint: "not null"},
			{Name: "publication_id", Type: "integer", Constraint: "not null references publications"},
			{Name: "chapter_title", Type: "varchar(255)", Constraint: "not null"},
			{Name: "chapter_text", Type: "text", Constraint: "not null"},
		},
	}

	Periodicals = Table{
		Name: "periodicals",
		Columns: []Column{
			{Name: "publication_id", Type: "integer", Constraint: "not null references publications"},
			{Name: "issn", Type: "varchar(17)", Constraint: "not null unique"},
			{Name: "issue", Type: "varchar(10)", Constraint: "not null"},
			{Name: "periodical_type", Type: "varchar(20)", Constraint: "not null"},
			{Name: "periodical_id", Type: "integer", Constraint: "not null"},
			{Name: "is_available", Type: "boolean", Constraint: "default true"},
		},
	}

	Articles = Table{
		Name: "articles",
		Columns: []Column{
			{Name: "article_id", Type: "integer", Constraint: "not null"},
			{Name: "publication_id", Type: "integer", Constraint: "not null references publications"},
			{Name: "creation_date", Type: "date", Constraint: "not null"},
			{Name: "topic", Type: "varchar(20)", Constraint: "not null"},
			{Name: "title", Type: "varchar(100)", Constraint: "not null"},
			{Name: "text", Type: "text", Constraint: "not null"},
			{Name: "journalist_name", Type: "varchar(100)", Constraint: "not null"},
		},
	}

	WriteBooks = Table{
		Name: "write_books",
		Columns: []Column{
			{Name: "emp_id", Type: "varchar(6)", Constraint: "not null"},
			{Name: "publication_id", Type: "integer", Constraint: "not null"},
		},
	}

	WriteArticles = Table{
		Name: "write_articles",
		Columns: []Column{
			{Name: "emp_id", Type: "varchar(6)", Constraint: "not null"},
			{Name: "publication_id", Type: "integer", Constraint: "not null"},
			{Name: "article_id", Type: "integer", Constraint: "not null"},
		},
	}

	ReviewPublications = Table{
		Name: "review_publications",
		Columns: []Column{
			{Name: "emp_id", Type: "varchar(6)", Constraint: "not null"},
			{Name: "publication_id", Type: "integer", Constraint: "not null"},
		},
	}

	Orders = Table{
		Name:      "orders",
		SerialKey: "order_id",
		Columns: []Column{
			{Name: "order_id", Type: "serial", Constraint: "primary key"},
			{Name: "account_id", Type: "integer", Constraint: "not null"},
			{Name: "order_date", Type: "date", Constraint: "not null"},
			{Name: "shipping_cost", Type: "numeric(8, 2)", Constraint: "not null"},
			{Name: "delivery_date", Type: "date", Constraint: "not null"},
			{Name: "total_price", Type: "numeric(8, 2)", Constraint: "not null"},
		},
	}

	BookOrdersInfo = Table{
		Name: "book_orders_info",
		Columns: []Column{
			{Name: "order_id", Type: "integer", Constraint: "not null"},
			{Name: "publication_id", Type: "integer", Constraint: "not null"},
			{Name: "quantity", Type: "integer", Constraint: "default 1"},
			{Name: "price", Type: "numeric(6, 2)", Constraint: "not null"},
		},
	}

	PeriodicalOrdersInfo = Table{
		Name: "periodical_orders_info",
		Columns: []Column{
			{Name: "order_id", Type: "integer", Constraint: "not null"},
			{Name: "publication_id", Type: "integer", Constraint: "not null"},
			{Name: "quantity", Type: "integer", Constraint: "default 1"},
			{Name: "price", Type: "numeric(6, 2)", Constraint: "not null"},
		},
	}

	Reports = Table{
		Name:      "reports",
		SerialKey: "report_id",
		Columns: []Column{
			{Name: "report_id", Type: "serial", Constraint: "primary key"},
			{Name: "month", Type: "integer", Constraint: "not null"},
			{Name: "year", Type: "integer", Constraint: "not null"},
			{Name: "total_expense", Type: "numeric(8, 2)", Constraint: "not null"},
			{Name: "total_revenue", Type: "numeric(8, 2)", Constraint: "not null"},
		},
	}
)

// All lists every table in dependency order, referenced tables first.
var All = []Table{
	Distributors,
	Accounts,
	AccountHousesInfo,
	AccountBills,
	AccountPayments,
	Employees,
	Authors,
	Editors,
	StaffPayments,
	SalaryPayments,
	Publications,
	Books,
	Chapters,
	Periodicals,
	Articles,
	WriteBooks,
	WriteArticles,
	ReviewPublications,
	Orders,
	BookOrdersInfo,
	PeriodicalOrdersInfo,
	Reports,
}
